package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lisawang/lisa-site/internal/content"
	"github.com/lisawang/lisa-site/internal/nav"
	"github.com/lisawang/lisa-site/internal/site"
	"github.com/lisawang/lisa-site/internal/tui"
)

// options holds the global flags.
type options struct {
	Verbose bool
	Port    string
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the lisa-site command tree. With no subcommand it
// serves the site.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "lisa-site",
		Short:        "Lisa Wang - Financial Analyst",
		Long:         "Serves Lisa Wang's resume page over HTTP, or shows it in the terminal.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(contextOf(cmd), opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Port, "port", envOr("PORT", "8080"), "HTTP listen port")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newTUICommand(opts))
	return cmd
}

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(contextOf(cmd), opts)
		},
	}
}

func newTUICommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [anchor]",
		Short: "Show the page in the terminal",
		Long: `Shows the page in the terminal. The optional anchor may be a section name
("education"), a fragment ("#education") or a full link ("/#education").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := startAnchor(args)
			if err != nil {
				return err
			}
			log, err := newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			reg, err := content.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGTERM)
			defer stop()
			return tui.Run(ctx, reg, log, start)
		},
	}
}

// startAnchor reads the optional tui argument. A word without "/" or "#" is
// a section name; anything else is a link, and only its fragment matters.
func startAnchor(args []string) (nav.Anchor, error) {
	if len(args) == 0 {
		return nav.Top, nil
	}
	arg := args[0]
	if !strings.ContainsAny(arg, "/#") {
		a, ok := nav.ParseAnchor(arg)
		if !ok {
			return "", fmt.Errorf("unknown section %q", arg)
		}
		return a, nil
	}
	loc, ok := nav.Resolve(arg)
	if !ok {
		return "", fmt.Errorf("unknown section %q", arg)
	}
	return loc.Anchor, nil
}

func serve(parent context.Context, opts *options) error {
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	reg, err := content.Load()
	if err != nil {
		return err
	}
	srv, err := site.New(reg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("starting", zap.String("gin_mode", gin.Mode()))
	return srv.Run(ctx, net.JoinHostPort("", opts.Port))
}

// newLogger builds the process logger. gin's release mode picks the JSON
// production config; LOG_LEVEL and --verbose adjust the level.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if gin.Mode() == gin.ReleaseMode {
		config = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
