// Package app runs a demo: open a window, build the shader program, upload a
// mesh and draw it every frame until the window closes.
package app

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/kjkrol/gokgl/internal/assets"
	"github.com/kjkrol/gokgl/internal/config"
	"github.com/kjkrol/gokgl/internal/gldriver"
	"github.com/kjkrol/gokgl/internal/hotreload"
	"github.com/kjkrol/gokgl/internal/platform"
	"github.com/kjkrol/gokgl/internal/renderer"
	"github.com/kjkrol/gokgl/pkg/geometry"
	"github.com/kjkrol/gokgl/pkg/shader"
)

// Run blocks until the window is closed. It must be called from main.
func Run(conf config.Config, mesh geometry.Mesh, logger *slog.Logger) error {
	win, err := platform.NewPlatformWindowWrapper(platform.WindowConfig{
		Width:        conf.Window.Width,
		Height:       conf.Window.Height,
		Title:        conf.Window.Title,
		SwapInterval: conf.Window.SwapInterval,
		Resizable:    conf.Window.Resizable,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	driver, err := gldriver.New()
	if err != nil {
		return fmt.Errorf("%w: %w", platform.ErrContextInit, err)
	}
	logger.Info("OpenGL initialized", "version", driver.Version())

	c := conf.Window.ClearColor
	r, err := renderer.New(driver, mesh, renderer.Config{
		ClearColor: color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]},
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	builder := shader.NewBuilder(driver,
		shader.WithLogger(logger),
		shader.WithValidation(conf.Shader.Validate),
	)
	load := func() (shader.Source, error) {
		return assets.LoadShader(conf.Shader.Path, assets.ShaderOptions{
			VertexEntry:   conf.Shader.VertexEntry,
			FragmentEntry: conf.Shader.FragmentEntry,
		})
	}
	reloader := hotreload.NewReloader(builder, load, r, logger)
	if err := reloader.Reload(); err != nil {
		return err
	}

	var watcher *hotreload.Watcher
	if conf.Shader.HotReload {
		watcher, err = hotreload.New(conf.Shader.Path, logger)
		if err != nil {
			logger.Warn("shader hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	r.Resize(win.FramebufferSize())
	win.Show()

	for !win.ShouldClose() {
		win.PollEvents()
		for {
			event, ok := win.NextEvent()
			if !ok {
				break
			}
			handleEvent(event, win, r, logger)
		}
		if watcher != nil {
			if path, ok := watcher.Poll(); ok {
				logger.Info("reloading shader", "path", path)
				_ = reloader.Reload()
			}
		}
		r.Render()
		win.SwapBuffers()
	}
	logger.Info("window closed")
	return nil
}

type closer interface {
	SetShouldClose(bool)
}

type resizer interface {
	Resize(width, height int)
}

func handleEvent(event platform.Event, win closer, r resizer, logger *slog.Logger) {
	switch e := event.(type) {
	case platform.KeyPress:
		logger.Debug("key pressed", "code", e.Code, "label", e.Label)
		if e.Code == platform.KeyEscape {
			win.SetShouldClose(true)
		}
	case platform.Resize:
		logger.Debug("framebuffer resized", "width", e.Width, "height", e.Height)
		r.Resize(e.Width, e.Height)
	case platform.ClientMessage:
		win.SetShouldClose(true)
	case platform.Expose, platform.MotionNotify:
	default:
		logger.Debug("unhandled event", "event", fmt.Sprintf("%T", e))
	}
}
