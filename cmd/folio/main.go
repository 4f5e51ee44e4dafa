// Command folio opens the portfolio page in a desktop window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/folio"
	"github.com/phanxgames/folio/content"
	"github.com/phanxgames/folio/display"
)

const (
	Version = "0.1.0"
	appName = "folio"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg, envErr := loadConfig()

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Interactive portfolio page",
		Long: `Folio renders a single-page portfolio: a hero with parallax, about,
skills and project sections, a navigation bar that follows the scroll
position, a light/dark theme toggle, and a project detail overlay.

Settings come from FOLIO_* environment variables; flags override them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			return run(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.Content, "content", "c", cfg.Content, "Site content file (YAML); the built-in site when empty")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	f.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	f.StringVar(&cfg.ColorScheme, "color-scheme", cfg.ColorScheme, "Initial color scheme (auto, light, dark)")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Print page state transitions to stderr")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	f.StringVar(&cfg.Script, "script", cfg.Script, "Run a JSON test script and exit when it finishes")
	f.StringVar(&cfg.ScreenshotDir, "screenshot-dir", cfg.ScreenshotDir, "Directory for script screenshots")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})
	cmd.AddCommand(checkCmd(&cfg))

	return cmd
}

// checkCmd validates a content file without opening a window.
func checkCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate site content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Content
			if len(args) == 1 {
				path = args[0]
			}
			site, err := loadSite(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d projects, %d skills, %d links\n",
				site.Name, len(site.Projects), len(site.Skills), len(site.Links))
			return nil
		},
	}
}

func loadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

func run(cfg Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return err
	}
	scheme, err := display.ParseColorScheme(cfg.ColorScheme)
	if err != nil {
		return err
	}
	site, err := loadSite(cfg.Content)
	if err != nil {
		return err
	}

	opts := display.Options{
		Site:          site,
		Width:         cfg.Width,
		Height:        cfg.Height,
		PrefersDark:   scheme.PrefersDark(os.LookupEnv),
		Debug:         cfg.Debug,
		ScreenshotDir: cfg.ScreenshotDir,
		Navigator:     display.NewBrowserNavigator(),
		Logger:        logger,
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := folio.LoadTestScript(data)
		if err != nil {
			return err
		}
		opts.Script = runner
		opts.ExitWhenDone = true
		opts.Navigator = &display.RecordingNavigator{}
	}

	logger.Info("starting",
		"version", Version,
		"content", cfg.Content,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"scheme", scheme)

	game, err := display.NewGame(opts)
	if err != nil {
		return err
	}
	return display.Run(game)
}
