package main

import (
	"context"
	"io"
	"log/slog"

	"lms/cmd/lms/render"
	"lms/internal/catalog"
	"lms/internal/config"
	"lms/internal/shell"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type Globals struct {
	Ctx         context.Context
	Source      catalog.Source
	CatalogPath string
	Settings    *config.Settings
	State       *shell.State
	Log         *slog.Logger
	Out         io.Writer
	Err         io.Writer
	Render      render.Renderer
	RunForm     func(f *huh.Form) error
	RunProgram  func(m tea.Model) error
}

func (g *Globals) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Globals) settings() *config.Settings {
	if g.Settings == nil {
		s := &config.Settings{Locale: "en", Theme: "auto", ChatURL: config.DefaultChatURL}
		return s
	}
	return g.Settings
}

func (g *Globals) runForm(f *huh.Form) error {
	if g.RunForm != nil {
		return g.RunForm(f)
	}
	return f.Run()
}

func (g *Globals) runProgram(m tea.Model) error {
	if g.RunProgram != nil {
		return g.RunProgram(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(g.context())).Run()
	return err
}

func (g *Globals) errOut() io.Writer {
	if g.Err == nil {
		return io.Discard
	}
	return g.Err
}

func (g *Globals) logger() *slog.Logger {
	if g.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Log
}
