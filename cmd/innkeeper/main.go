// Command innkeeper runs the forum web server.
package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/innkeeper/app/web"
	"github.com/dmitrymomot/innkeeper/core/config"
	"github.com/dmitrymomot/innkeeper/core/logger"
	"github.com/dmitrymomot/innkeeper/core/page"
)

// Set at build time:
//
//	go build -ldflags "-X main.version=v1.2.3 -X main.gitCommit=$(git rev-parse --short HEAD)"
var (
	version   = "dev"
	gitCommit = ""
)

func main() {
	var cfg web.Config
	config.MustLoad(&cfg)

	log := newLogger(cfg)

	sum, err := executableSHA256()
	if err != nil {
		log.Warn("failed to hash executable", logger.Component("main"), logger.Error(err))
	}

	app, err := web.NewApp(
		web.WithConfig(cfg),
		web.WithLogger(log),
		web.WithBuildInfo(page.BuildInfo{
			SHA256:    sum,
			Version:   version,
			GitCommit: gitCommit,
		}),
	)
	if err != nil {
		log.Error("failed to initialize application", logger.Component("main"), logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Error("application stopped with error", logger.Component("main"), logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg web.Config) *slog.Logger {
	if cfg.IsProduction() {
		return logger.New(logger.WithProduction(cfg.AppName), logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(logger.WithDevelopment(cfg.AppName))
}

func executableSHA256() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
