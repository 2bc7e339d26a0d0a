package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"lms/cmd/lms/render"
	"lms/internal/catalog"
	"lms/internal/config"
	"lms/internal/shell"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

type CLI struct {
	Dashboard DashboardCmd `cmd:"" aliases:"home" help:"Show the learner dashboard"`
	Courses   CoursesCmd   `cmd:"" aliases:"ls" help:"List courses in a table"`
	Cards     CardsCmd     `cmd:"" help:"List courses as cards"`
	Paths     PathsCmd     `cmd:"" aliases:"lp" help:"List learning paths"`
	Browse    BrowseCmd    `cmd:"" aliases:"b" help:"Search and filter courses interactively"`
	Show      ShowCmd      `cmd:"" help:"Show a course or learning path"`
	Tabs      TabsCmd      `cmd:"" help:"Show portal navigation"`
	Chat      ChatCmd      `cmd:"" help:"Print the chat assistant embed URL"`
	Init      InitCmd      `cmd:"" help:"Write the sample catalog to the catalog path"`

	CatalogPath string `name:"catalog" short:"c" help:"Path to catalog file"`
	ConfigPath  string `name:"config" help:"Path to settings file"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}

func (c *CLI) AfterApply(kctx *kong.Context, ctx context.Context) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultSettingsPath()
	}
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	catalogPath := c.CatalogPath
	if catalogPath == "" {
		catalogPath = config.DefaultCatalogPath()
	}
	catalogPath, err = config.ExpandPath(catalogPath)
	if err != nil {
		return fmt.Errorf("invalid catalog path: %w", err)
	}
	source := catalog.FallbackSource{
		Primary:  catalog.NewYAMLSource(catalogPath, log),
		Fallback: catalog.StaticSource{},
	}

	theme, err := shell.ParseTheme(settings.Theme, lipgloss.HasDarkBackground())
	if err != nil {
		return err
	}

	var r *render.LipglossRenderer
	if settings.Width > 0 {
		r = render.NewLipglossRenderer(os.Stdout, settings.Width)
	} else {
		r = render.NewLipglossRendererAuto(os.Stdout)
	}
	r.WithDarkBackground(theme == shell.ThemeDark)

	log.Debug("settings loaded", "config", configPath, "catalog", catalogPath, "locale", settings.Locale)

	globals := &Globals{
		Ctx:         ctx,
		Source:      source,
		CatalogPath: catalogPath,
		Settings:    settings,
		State:       shell.NewState(theme, settings.ChatURL),
		Log:         log,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Render:      r,
	}
	kctx.Bind(globals)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := CLI{}
	kctx := kong.Parse(&cli,
		kong.Name("lms"),
		kong.Description("Learning portal courses and paths in the terminal"),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
