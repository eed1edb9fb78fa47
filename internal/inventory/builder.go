// Package inventory assembles the inventory record from the collectors and
// delivers it to the configured destinations.
package inventory

import (
	"context"
	"time"

	"github.com/breeze-rmm/inventory-agent/internal/collector"
	"github.com/breeze-rmm/inventory-agent/internal/logging"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// Options control a single inventory build.
type Options struct {
	DeviceID     string
	Tag          string
	AgentVersion string
}

// Builder runs collectors in order against a fresh record.
type Builder struct {
	logger     *zap.Logger
	collectors []collector.Collector
	now        func() time.Time
}

// NewBuilder creates a builder for the given collectors.
func NewBuilder(logger *zap.Logger, collectors ...collector.Collector) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		logger:     logging.Component(logger, "inventory"),
		collectors: collectors,
		now:        time.Now,
	}
}

// Build runs every collector. Collector errors are logged and never abort
// the build; only cancellation of ctx does.
func (b *Builder) Build(ctx context.Context, opts Options) (*models.Inventory, error) {
	inv := &models.Inventory{
		DeviceID:     opts.DeviceID,
		Tag:          opts.Tag,
		AgentVersion: opts.AgentVersion,
		GeneratedAt:  b.now().UTC(),
	}

	for _, c := range b.collectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := b.now()
		if err := c.Collect(inv); err != nil {
			b.logger.Warn("Collector failed",
				zap.String("collector", c.Name()),
				zap.Error(err))
			continue
		}
		b.logger.Debug("Collector completed",
			zap.String("collector", c.Name()),
			zap.Duration("took", b.now().Sub(start)))
	}

	return inv, nil
}
