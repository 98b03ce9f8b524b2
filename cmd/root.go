package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/export"
	"task-tracker.com/task-tracker/internal/logging"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

const skipAutoExport = "skip-auto-export"

var (
	configPath string
	dbPath     string
	logLevel   string

	current *session
)

// session is everything one command invocation works with.
type session struct {
	cfg      *config.Config
	log      *logrus.Logger
	repo     *repository.TaskRepository
	registry *services.TaskRegistry
}

var rootCmd = &cobra.Command{
	Use:           "task-tracker",
	Short:         "Personal task tracker",
	Long:          "Create, list, edit and delete tasks stored in a local sqlite database.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsSession(cmd) {
			return nil
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		current = s
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil || !current.cfg.Snapshot.ExportOnExit || cmd.Annotations[skipAutoExport] != "" {
			return nil
		}
		_, err := current.exportSnapshot(current.cfg.Snapshot.Path, current.cfg.Snapshot.Format)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (env TRACKER_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if apperrors.IsFatal(err) {
			fmt.Fprintf(os.Stderr, "task-tracker: fatal: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "task-tracker: %v\n", err)
		}
		os.Exit(apperrors.ExitCode(err))
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	defer closeSession()
	return rootCmd.Execute()
}

// needsSession is false for cobra's built-in help and completion commands.
func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func openSession(cmd *cobra.Command) (*session, error) {
	envErr := godotenv.Load()

	path := configPath
	if path == "" {
		path = os.Getenv("TRACKER_CONFIG")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalid, "load config", err)
	}
	if dbPath != "" {
		cfg.Database.DSN = dbPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if envErr != nil {
		log.Debug(".env file not found, using environment variables")
	}

	db, err := config.NewDatabaseClient(cfg.Database.DSN, log)
	if err != nil {
		return nil, err
	}
	repo := repository.NewTaskRepository(db)

	registry := services.NewTaskRegistry(repo, log.WithField("component", "registry"))
	if err := registry.Load(cmd.Context()); err != nil {
		_ = repo.Close()
		return nil, err
	}

	return &session{
		cfg:      cfg,
		log:      log,
		repo:     repo,
		registry: registry,
	}, nil
}

func (s *session) exportSnapshot(path, format string) (*export.Snapshot, error) {
	w, err := export.NewWriter(path, format)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalid, "export snapshot", err)
	}

	snap, err := w.Write(s.registry)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrWriteFailed, "export snapshot", err)
	}

	s.log.WithFields(logrus.Fields{
		"path":        path,
		"snapshot_id": snap.ID,
		"count":       snap.Count,
	}).Info("snapshot written")
	return snap, nil
}

func closeSession() {
	if current == nil {
		return
	}
	if err := current.repo.Close(); err != nil {
		current.log.WithError(err).Warn("closing database failed")
	}
	current = nil
}
