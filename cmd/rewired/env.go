package main

import (
	"context"
	"io"
	"os"
	"time"

	"gorm.io/gorm"

	memoir "github.com/shauncritzer/memoir"
	"github.com/shauncritzer/memoir/internal/seed"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and the two external systems
// (browser and database).
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// NewRenderer builds the HTML-to-PDF backend for the relief command.
	NewRenderer func(backend string, timeout time.Duration) (memoir.HTMLRenderer, error)

	// OpenDB connects to the lesson database for the seed command.
	OpenDB func(ctx context.Context, cfg seed.Config) (*gorm.DB, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		NewRenderer: memoir.NewRenderer,
		OpenDB:      seed.Open,
	}
}
