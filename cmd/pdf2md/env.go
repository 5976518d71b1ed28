package main

import (
	"context"
	"io"
	"os"
	"time"

	pdf2md "github.com/alnah/go-pdf2md"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input pdf2md.Input) (*pdf2md.Result, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pdf2md.Service)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewService func(opts ...pdf2md.Option) Converter
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func(opts ...pdf2md.Option) Converter {
			return pdf2md.New(opts...)
		},
	}
}
