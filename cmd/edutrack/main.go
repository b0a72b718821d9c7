// Package main is the entry point of EduTrack, a roster and attendance
// tracker for teaching assistants driven by short text commands.
//
//	edutrack                      interactive session on stdin/stdout
//	edutrack exec "add /c CS2103T" "list"
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DonovanJJ/tp/config"
	"github.com/DonovanJJ/tp/internal/application/command"
	"github.com/DonovanJJ/tp/internal/infrastructure/persistence"
	"github.com/DonovanJJ/tp/internal/interface/console"
	"github.com/DonovanJJ/tp/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	debug      bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "edutrack",
		Short:        "EduTrack: classes, students and attendance from the command line",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), opts, errOut)
			if err != nil {
				return err
			}
			defer a.close()

			session := console.NewSession(a.router, in, out)
			session.Interactive = true
			_, err = session.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./edutrack.yaml if present)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")

	root.AddCommand(newExecCmd(&opts, out, errOut))
	return root
}

func newExecCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>...",
		Short: "Run each argument as one EduTrack command line",
		Example: `  edutrack exec "add /c CS2103T" "add /s John Doe /id A0123456X /c CS2103T"
  edutrack exec "mark /s 1 /c CS2103T"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), *opts, errOut)
			if err != nil {
				return err
			}
			defer a.close()

			session := console.NewSession(a.router, strings.NewReader(strings.Join(args, "\n")), out)
			failed, err := session.Run(cmd.Context())
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d command(s) failed", failed, len(args))
			}
			return nil
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// WIRING
// ══════════════════════════════════════════════════════════════════════════════

type app struct {
	router *console.Router
	close  func()
}

func setup(ctx context.Context, opts options, errOut io.Writer) (*app, error) {
	// ─────────────────────────────────────────────────────────────────────────
	// Stage 1: Configuration & logging
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	log := logger.New(logger.Options{
		Output:    errOut,
		Level:     logger.ParseLevel(cfg.Log.Level),
		Format:    logger.Format(cfg.Log.Format),
		AddCaller: opts.debug,
	}).With(logger.String("app", cfg.App.Name))

	// ─────────────────────────────────────────────────────────────────────────
	// Stage 2: Storage
	// ─────────────────────────────────────────────────────────────────────────
	store, err := persistence.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open storage", logger.Driver(cfg.Storage.Driver), logger.Err(err))
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout)
	defer cancel()
	r, err := store.Repository.Load(loadCtx)
	if err != nil {
		_ = store.Close()
		log.Error("failed to load roster", logger.Driver(store.Driver), logger.Err(err))
		return nil, err
	}
	log.Info("roster loaded",
		logger.Driver(store.Driver),
		logger.Int("classes", r.NumClasses()),
		logger.Int("students", r.NumStudents()),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// Stage 3: Command pipeline
	// ─────────────────────────────────────────────────────────────────────────
	router := console.NewRouter(command.NewModel(r), console.RouterConfig{
		Logger:     log,
		Repository: store.Repository,
	})

	return &app{
		router: router,
		close: func() {
			if err := store.Close(); err != nil {
				log.Warn("failed to close storage", logger.Err(err))
			}
		},
	}, nil
}
