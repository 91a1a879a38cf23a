package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mmynk/splitwizard/internal/config"
	"github.com/mmynk/splitwizard/internal/metrics"
	"github.com/mmynk/splitwizard/internal/storage/sqlite"
	"github.com/mmynk/splitwizard/pkg/logging"
)

type app struct {
	cfg     config.Config
	store   *sqlite.SQLiteStore
	rec     *metrics.Recorder
	logSink io.Closer
}

func wireApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	a := &app{cfg: cfg, rec: metrics.New()}

	level := logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.File == "" {
		logging.SetupWithLevel(level)
	} else {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		a.logSink = f
		logging.SetupWriter(f, level)
	}

	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.store = store
	slog.Info("Storage initialized", "database", cfg.Storage.Path)

	return a, nil
}

// withApp wires the app, runs fn and tears everything down.
func withApp(cfgPath string, fn func(*app) error) error {
	a, err := wireApp(cfgPath)
	if err != nil {
		return err
	}
	return errors.Join(fn(a), a.close())
}

// close flushes metrics and releases the store and log file.
func (a *app) close() error {
	var errs []error
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := a.rec.WriteTextfile(path); err != nil {
			slog.Warn("Failed to write metrics", "path", path, "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	if a.logSink != nil {
		logging.SetupWithLevel(logging.ParseLevel(a.cfg.Log.Level))
		if err := a.logSink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
	}
	return errors.Join(errs...)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
