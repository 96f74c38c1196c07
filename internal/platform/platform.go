package platform

import "errors"

// ErrContextInit reports that no window or GL context could be created.
var ErrContextInit = errors.New("platform: context init failed")

type WindowConfig struct {
	PositionX    int
	PositionY    int
	Width        int
	Height       int
	Title        string
	SwapInterval int
	Resizable    bool
}

// PlatformWindowWrapper owns a native window and the GL context made current
// on the thread that created it. All methods must be called from that thread.
type PlatformWindowWrapper interface {
	Show()
	Close()
	// PollEvents processes pending native events without blocking and
	// queues them for NextEvent.
	PollEvents()
	NextEvent() (Event, bool)
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (int, int)
}
