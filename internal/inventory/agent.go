package inventory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/breeze-rmm/inventory-agent/internal/collector"
	"github.com/breeze-rmm/inventory-agent/internal/config"
	"github.com/breeze-rmm/inventory-agent/internal/logging"
	"github.com/breeze-rmm/inventory-agent/internal/machine"
	"github.com/breeze-rmm/inventory-agent/internal/probe"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// Agent performs one inventory run: reconcile hardware facts, settle the
// device ID, build the record and deliver it.
type Agent struct {
	cfg     *config.Config
	version string
	logger  *zap.Logger

	machine *machine.Machine
	builder *Builder
	sinks   []Sink

	// wait delays probing, e.g. to let the system settle after boot.
	wait time.Duration

	// saveConfig persists a newly generated device ID.
	saveConfig func(*config.Config) error
	hostname   func() (string, error)
	now        func() time.Time
}

// NewAgent wires the default probes, collectors and the sinks configured in
// cfg.
func NewAgent(cfg *config.Config, configPath, version string, logger *zap.Logger) (*Agent, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ServerURL == "" && cfg.LocalPath == "" && !cfg.Stdout {
		return nil, ErrNoOutput
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sinks, err := Sinks(cfg, logger, version)
	if err != nil {
		return nil, err
	}

	m := machine.New(logger, probe.Default()...)
	collectors := []collector.Collector{
		collector.NewIdentityCollector(logger, m),
		collector.NewSystemCollector(logger),
	}
	if !cfg.NoSoftware {
		collectors = append(collectors, collector.NewSoftwareCollector(logger))
	}

	return &Agent{
		cfg:        cfg,
		version:    version,
		logger:     logging.Component(logger, "agent"),
		machine:    m,
		builder:    NewBuilder(logger, collectors...),
		sinks:      sinks,
		wait:       time.Duration(cfg.Wait) * time.Second,
		saveConfig: func(c *config.Config) error { return c.Save(configPath) },
		hostname:   os.Hostname,
		now:        time.Now,
	}, nil
}

// Run performs the inventory. Every sink is tried; the returned error joins
// the failures.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.settle(ctx); err != nil {
		return err
	}
	if !probe.Privileged() {
		a.logger.Warn("Not running as root, hardware information may be incomplete")
	}

	a.machine.RetrieveData()
	deviceID := a.deviceID()

	inv, err := a.builder.Build(ctx, Options{
		DeviceID:     deviceID,
		Tag:          a.cfg.Tag,
		AgentVersion: a.version,
	})
	if err != nil {
		return fmt.Errorf("failed to build inventory: %w", err)
	}

	return a.deliver(ctx, inv)
}

// settle blocks for the configured wait before anything is probed.
func (a *Agent) settle(ctx context.Context) error {
	if a.wait <= 0 {
		return nil
	}
	a.logger.Info("Waiting before collecting", zap.Duration("wait", a.wait))
	timer := time.NewTimer(a.wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (a *Agent) deliver(ctx context.Context, inv *models.Inventory) error {
	var errs []error
	for _, s := range a.sinks {
		if err := s.Send(ctx, inv); err != nil {
			a.logger.Error("Failed to deliver inventory",
				zap.String("sink", s.Name()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		a.logger.Info("Inventory delivered",
			zap.String("sink", s.Name()),
			zap.String(logging.KeyDeviceID, inv.DeviceID))
	}
	return errors.Join(errs...)
}

// deviceID returns the configured ID, generating and persisting one on the
// first run.
func (a *Agent) deviceID() string {
	if a.cfg.DeviceID != "" {
		return a.cfg.DeviceID
	}

	host, err := a.hostname()
	if err != nil {
		a.logger.Warn("Failed to read hostname", zap.Error(err))
	}
	a.cfg.DeviceID = DeviceID(host, a.machine.BIOSDate(), a.now(), a.cfg.UseCurrentTimeInDeviceID)

	if err := a.saveConfig(a.cfg); err != nil {
		a.logger.Warn("Failed to persist device ID",
			zap.String(logging.KeyDeviceID, a.cfg.DeviceID),
			zap.Error(err))
	}
	return a.cfg.DeviceID
}
