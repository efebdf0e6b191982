// Command alfred runs the Alfred personal assistant API server.
//
// Usage:
//
//	alfred [--config path] [serve]
//	alfred [--config path] config check
//	alfred version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/alfred-backend/internal/app"
	"github.com/heartmarshall/alfred-backend/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "alfred",
		Usage:   "Personal assistant API server",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serve,
			},
			{
				Name:  "config",
				Usage: "Configuration commands",
				Subcommands: []*cli.Command{
					{
						Name:   "check",
						Usage:  "Load and validate the configuration",
						Action: configCheck,
					},
				},
			},
			{
				Name:  "version",
				Usage: "Print build information",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintf(c.App.Writer, "alfred %s\n", app.BuildVersion())
					return err
				},
			},
		},
		Action: serve,
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, cfg, logger)
}

func configCheck(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintln(w, "configuration OK")
	fmt.Fprintf(w, "  listen:        %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Fprintf(w, "  storage:       %s\n", cfg.Storage.Driver)
	fmt.Fprintf(w, "  session store: %s\n", cfg.Session.Store)
	fmt.Fprintf(w, "  auth policy:   %s\n", cfg.Auth.Policy)
	fmt.Fprintf(w, "  demo seed:     %t\n", cfg.Demo.Seed)
	return nil
}
