package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/gokgl/internal/platform"
)

type fakeWindow struct {
	closing bool
}

func (w *fakeWindow) SetShouldClose(v bool) {
	w.closing = v
}

type fakeRenderer struct {
	width, height int
}

func (r *fakeRenderer) Resize(width, height int) {
	r.width, r.height = width, height
}

func TestHandleEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		event   platform.Event
		closing bool
		width   int
		height  int
	}{
		{"escape closes", platform.KeyPress{Code: platform.KeyEscape}, true, 0, 0},
		{"other key", platform.KeyPress{Code: 'A', Label: "a"}, false, 0, 0},
		{"window manager close", platform.ClientMessage{}, true, 0, 0},
		{"resize", platform.Resize{Width: 640, Height: 480}, false, 640, 480},
		{"unhandled", platform.MouseWheel{DeltaY: 1}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := &fakeWindow{}
			r := &fakeRenderer{}
			handleEvent(tt.event, win, r, logger)
			assert.Equal(t, tt.closing, win.closing)
			assert.Equal(t, tt.width, r.width)
			assert.Equal(t, tt.height, r.height)
		})
	}
}
