package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/archaeoscan/fieldmap/internal/catalog"
	"github.com/archaeoscan/fieldmap/internal/config"
	"github.com/archaeoscan/fieldmap/internal/logging"
	intOtel "github.com/archaeoscan/fieldmap/internal/otel"
	"github.com/archaeoscan/fieldmap/internal/session"
	"github.com/archaeoscan/fieldmap/internal/view"
)

// app holds the services shared by every subcommand.
type app struct {
	start time.Time

	slog     *logging.SlogManager
	log      *slog.Logger
	storeLog zerolog.Logger
	logFile  *os.File

	otel        *intOtel.Provider
	instruments *intOtel.Instruments
}

// setup loads config and wires logging and telemetry. The log file is
// opened before the OTel provider so exported records share it.
func (a *app) setup(configDir string) error {
	a.start = time.Now()
	a.slog = logging.NewSlogManager()

	if err := config.Load(configDir); err != nil {
		return err
	}
	level := config.GetString("logLevel")

	file, err := logging.OpenLogFile(config.GetString("logsDir"), appName, a.start)
	if err != nil {
		// fall back to stdout
		a.slog.Setup(nil, level, nil)
		a.slog.Logger().Warn("Failed to open log file", "error", err)
	} else {
		a.logFile = file
	}

	otelCfg := config.GetOTelConfig()
	a.otel, err = intOtel.New(intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    a.logWriter(),
		Endpoint:     otelCfg.Endpoint,
		Insecure:     otelCfg.Insecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OTel provider: %w", err)
	}

	var otelLogProvider *sdklog.LoggerProvider
	if a.otel.Enabled() {
		otelLogProvider = a.otel.LoggerProvider()
	}
	a.slog.Setup(a.logWriter(), level, otelLogProvider)
	a.log = a.slog.Logger()
	a.log.Info("Starting", "app", appName, "version", Version, "build", BuildDate)

	a.instruments, err = intOtel.NewInstruments(a.otel.Meter(logging.InstrumentationName))
	if err != nil {
		return err
	}

	a.storeLog = logging.NewZerolog(a.logWriter(), level, "catalog")
	return nil
}

// logWriter avoids handing a typed nil *os.File to io.Writer consumers.
func (a *app) logWriter() io.Writer {
	if a.logFile == nil {
		return nil
	}
	return a.logFile
}

func (a *app) shutdown(ctx context.Context) error {
	var errs []error
	if a.slog != nil {
		errs = append(errs, a.slog.Flush(ctx))
	}
	if a.otel != nil {
		errs = append(errs, a.otel.Shutdown(ctx))
	}
	if a.logFile != nil {
		errs = append(errs, a.logFile.Close())
	}
	return errors.Join(errs...)
}

// sessionConfig builds the map settings from config with flag overrides.
func sessionConfig(o viewFlags) (session.Config, error) {
	mc := config.GetMapConfig()
	policy, err := view.ParsePickPolicy(mc.PickPolicy)
	if err != nil {
		return session.Config{}, err
	}
	cfg := session.Config{
		Width:    mc.Width,
		Height:   mc.Height,
		Zoom:     mc.Zoom,
		ShowGrid: mc.ShowGrid,
		Policy:   policy,
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	if o.height > 0 {
		cfg.Height = o.height
	}
	if o.zoom > 0 {
		cfg.Zoom = o.zoom
	}
	if o.noGrid {
		cfg.ShowGrid = false
	}
	return cfg, nil
}

// openSession loads the configured catalog into a new session.
func (a *app) openSession(ctx context.Context, o viewFlags) (*session.Session, func() error, error) {
	cfg, err := sessionConfig(o)
	if err != nil {
		return nil, nil, err
	}
	cc := config.GetCatalogConfig()
	src, closer, err := catalog.NewSource(catalog.Config{Source: cc.Source, Path: cc.Path}, a.storeLog)
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.Load(ctx, src, cfg,
		session.WithLogger(a.log),
		session.WithInstruments(a.instruments),
	)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	if err := o.apply(sess); err != nil {
		closer.Close()
		return nil, nil, err
	}
	return sess, closer.Close, nil
}
