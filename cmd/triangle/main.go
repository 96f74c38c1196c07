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

	if err := app.Run(conf, geometry.Triangle(), logger); err != nil {
		logger.Error("triangle demo failed", "err", err)
		os.Exit(1)
	}
}
