package main

import (
	"os"

	"github.com/kjkrol/gokgl/internal/app"
	"github.com/kjkrol/gokgl/internal/config"
	"github.com/kjkrol/gokgl/internal/logx"
	"github.com/kjkrol/gokgl/pkg/geometry"
)

func main() {
	conf, err := config.Load(config.DefaultPath)
	logger := logx.New(conf.Log.Level, os.Stderr)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if conf.Window.Title == config.Default().Window.Title {
		conf.Window.Title = "OpenGL Quad"
	}

	if err := app.Run(conf, geometry.Quad(), logger); err != nil {
		logger.Error("quad demo failed", "err", err)
		os.Exit(1)
	}
}
