package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/catalog"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/config"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/instance"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/locale"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/process"
	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the kiosk",
	Long: `Opens the launcher window and runs until it is closed.

Only one launcher can run per lock file; a second one shows a message
and exits.`,
	Args: cobra.NoArgs,
	RunE: runKiosk,
}

func runKiosk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	aglauncher.SetLogPath(cfg.Logging.Path)
	aglauncher.SetRawLogLevel(cfg.Logging.Level)
	logger := aglauncher.GetLogger()
	defer aglauncher.Close()

	for _, key := range cfg.Undecoded {
		logger.Warn("Unknown config key", "key", key)
	}

	messages, err := locale.New(cfg.LanguageTag())
	if err != nil {
		return err
	}
	errorTitle := messages.Text(locale.ErrorTitle, nil)

	lock, err := instance.Acquire(cfg.LockFile)
	if err != nil {
		if errors.Is(err, aglauncher.ErrAlreadyRunning) {
			logger.Warn("Another launcher is already running", "lock", cfg.LockFile)
			aglauncher.ShowError(errorTitle, messages.Text(locale.AlreadyRunning, nil))
		}
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		logger.Error("Cannot load catalog", "path", cfg.Catalog, "error", err)
		aglauncher.ShowError(errorTitle, catalogMessage(messages, cfg.Catalog, err))
		return err
	}

	var history aglauncher.History
	if cfg.History.Database != "" {
		store, err := openStore(cfg)
		if err != nil {
			// History is optional; the kiosk runs without it.
			logger.Warn("Play history disabled", "error", err)
		} else {
			defer store.Close()
			history = store
		}
	}

	err = aglauncher.Init(aglauncher.Options{
		WindowTitle:   cfg.Window.Title,
		WindowOptions: aglauncher.WindowOptionsFromConfig(cfg.Window),
		Theme:         cfg.Theme,
	})
	if err != nil {
		logger.Error("Init failed", "error", err)
		aglauncher.ShowError(errorTitle, err.Error())
		return err
	}

	kiosk, err := aglauncher.NewKiosk(aglauncher.KioskOptions{
		Catalog:         cat,
		Launcher:        process.Spawner{Logger: logger},
		Controller:      cfg.ControllerOptions(),
		RepeatDelay:     cfg.Timing.RepeatDelay.Duration,
		ErrorBanner:     cfg.Timing.ErrorBanner.Duration,
		MinimizeOnRun:   cfg.Window.MinimizeOnRun,
		Messages:        messages,
		History:         history,
		NewSessionID:    storage.NewSessionID,
		AttendantDevice: cfg.Attendant.Device,
		AttendantButton: cfg.Attendant.ButtonCode,
		Logger:          logger,
	}, time.Now())
	if err != nil {
		return err
	}

	if err := kiosk.Run(); err != nil {
		logger.Error("Launcher stopped", "error", err)
		return err
	}

	logger.Info("Launcher closed")
	return nil
}

// catalogMessage explains a catalog load failure in the configured language.
func catalogMessage(m *locale.Messages, path string, err error) string {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return m.Text(locale.CatalogMissing, map[string]any{"Path": path})
	case errors.Is(err, catalog.ErrEmpty):
		return m.Text(locale.CatalogEmpty, map[string]any{"Path": path})
	default:
		return m.Text(locale.CatalogInvalid, map[string]any{"Path": path, "Err": err.Error()})
	}
}

func openStore(cfg config.Config) (*storage.Store, error) {
	path, err := config.ExpandHome(cfg.History.Database)
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}
