package cli

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
)

func TestHeadMoved(t *testing.T) {
	tests := map[string]struct {
		event fsnotify.Event
		want  bool
	}{
		"HEAD write": {
			event: fsnotify.Event{Name: "/repo/.git/HEAD", Op: fsnotify.Write},
			want:  true,
		},
		"branch ref created": {
			event: fsnotify.Event{Name: "/repo/.git/refs/heads/main", Op: fsnotify.Create},
			want:  true,
		},
		"packed refs rewrite": {
			event: fsnotify.Event{Name: "/repo/.git/packed-refs", Op: fsnotify.Rename},
			want:  true,
		},
		"index churn ignored": {
			event: fsnotify.Event{Name: "/repo/.git/index", Op: fsnotify.Write},
			want:  false,
		},
		"chmod ignored": {
			event: fsnotify.Event{Name: "/repo/.git/HEAD", Op: fsnotify.Chmod},
			want:  false,
		},
		"ref removal ignored": {
			event: fsnotify.Event{Name: "/repo/.git/refs/heads/main", Op: fsnotify.Remove},
			want:  false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, headMoved(tc.event))
		})
	}
}
