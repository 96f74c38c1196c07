package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const KeyEscape = uint64(glfw.KeyEscape)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type glfwWindowWrapper struct {
	window  *glfw.Window
	queue   *eventQueue
	cursorX float64
	cursorY float64
}

// NewPlatformWindowWrapper creates a hidden window with an OpenGL 3.3 core
// context and makes that context current on the calling thread.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %w", ErrContextInit, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, boolHint(conf.Resizable))

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create window: %w", ErrContextInit, err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(conf.SwapInterval)

	w := &glfwWindowWrapper{
		window: window,
		queue:  newEventQueue(0),
	}
	w.installCallbacks()
	return w, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := glfw.GetKeyName(key, scancode)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.queue.push(KeyPress{Code: uint64(key), Label: label})
		case glfw.Release:
			w.queue.push(KeyRelease{Code: uint64(key), Label: label})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := int(w.cursorX), int(w.cursorY)
		b := buttonCode(button)
		if action == glfw.Press {
			w.queue.push(ButtonPress{Button: b, X: x, Y: y})
		} else {
			w.queue.push(ButtonRelease{Button: b, X: x, Y: y})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.cursorX, w.cursorY = x, y
		w.queue.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.queue.push(MouseWheel{DeltaX: dx, DeltaY: dy, X: int(w.cursorX), Y: int(w.cursorY)})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.push(Resize{Width: width, Height: height})
	})
	w.window.SetRefreshCallback(func(_ *glfw.Window) {
		w.queue.push(Expose{})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.push(ClientMessage{})
	})
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}

func (w *glfwWindowWrapper) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindowWrapper) NextEvent() (Event, bool) {
	return w.queue.pop()
}

func (w *glfwWindowWrapper) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// buttonCode maps GLFW buttons to X11 numbering: 1 left, 2 middle, 3 right.
func buttonCode(button glfw.MouseButton) uint32 {
	switch button {
	case glfw.MouseButtonLeft:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	case glfw.MouseButtonRight:
		return 3
	default:
		return uint32(button) + 1
	}
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
