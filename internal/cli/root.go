package cli

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/restdemo/internal/client"
	"github.com/MrSnakeDoc/restdemo/internal/config"
)

// Options holds CLI-level dependencies that tests replace.
type Options struct {
	// IsTerminal reports whether the ui command may take over the terminal.
	// Defaults to checking stdin and stdout with go-isatty.
	IsTerminal func() bool
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	env        string
	prodURL    string
	backend    string
	timeout    time.Duration
}

var errUnhealthy = errors.New("backend is not healthy")

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.IsTerminal == nil {
		opts.IsTerminal = stdioIsTerminal
	}
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "restdemoctl",
		Short: "restdemo client",
		Long:  "restdemoctl talks to the restdemo backend: probe its health, read its info and fetch its record.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (yaml or toml), defaults to $"+config.EnvConfigFile)
	pf.StringVar(&flags.env, "env", string(config.EnvServer), "Environment used to resolve the backend URL: server, browser-dev, browser-prod")
	pf.StringVar(&flags.prodURL, "prod-url", "", "Production backend URL for browser-prod, defaults to the configured production_url")
	pf.StringVar(&flags.backend, "backend", "", "Backend URL, bypasses environment resolution")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Override the per-request timeout")

	root.AddCommand(newHealthCommand(flags))
	root.AddCommand(newInfoCommand(flags))
	root.AddCommand(newFetchCommand(flags))
	root.AddCommand(newUICommand(flags, opts))
	return root
}

// loadConfig applies the CLI flags on top of defaults, file and environment.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	path := f.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if f.timeout > 0 {
		cfg.RequestTimeout = f.timeout
	}
	if f.prodURL != "" {
		cfg.ProductionURL = f.prodURL
	}
	return cfg, nil
}

func (f *globalFlags) newClient() (*client.Client, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	if f.backend != "" {
		return client.NewClient(f.backend, cfg.APIBasePath, cfg.RequestTimeout)
	}

	kind, err := config.ParseEnvironmentKind(f.env)
	if err != nil {
		return nil, err
	}
	return client.FromConfig(cfg, config.Environment{Kind: kind, ProductionURLOverride: cfg.ProductionURL})
}

func stdioIsTerminal() bool {
	return isTTY(os.Stdin) && isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
