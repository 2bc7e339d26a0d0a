package main

import (
	"errors"
	"fmt"
	"os"

	"lms/internal/catalog"
	"lms/internal/config"
)

type InitCmd struct {
	Force bool `short:"f" help:"Overwrite an existing catalog file"`
}

func (cmd *InitCmd) Run(g *Globals) error {
	path := g.CatalogPath
	if path == "" {
		path = config.DefaultCatalogPath()
	}

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("catalog already exists at %s (use --force to overwrite)", config.ShortenPath(path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	if err := catalog.WriteCatalog(path, catalog.SampleCourses(), catalog.SamplePaths()); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	fmt.Fprintf(g.Out, "Wrote sample catalog: %s\n", config.ShortenPath(path))
	return nil
}
