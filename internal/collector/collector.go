// Package collector fills the sections of an inventory record. The hardware
// identity comes from the reconciled machine facts; host, CPU, storage,
// network and software sections come from the operating system.
package collector

import (
	"github.com/breeze-rmm/inventory-agent/internal/logging"
	"github.com/breeze-rmm/inventory-agent/pkg/models"
	"go.uber.org/zap"
)

// Collector is the interface that all inventory collectors must implement.
type Collector interface {
	// Collect fills the collector's sections of inv. Partial failures are
	// logged and leave the affected fields empty. Whatever was filled is
	// kept even when an error is returned.
	Collect(inv *models.Inventory) error

	// Name returns a human-readable name for the collector,
	// useful for logging and identification.
	Name() string
}

// BaseCollector provides common functionality for all collectors
type BaseCollector struct {
	logger *zap.Logger
}

// NewBaseCollector creates a new BaseCollector with the given logger
func NewBaseCollector(logger *zap.Logger, name string) BaseCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseCollector{logger: logging.Component(logger, name)}
}

// Logger returns the collector's logger
func (b *BaseCollector) Logger() *zap.Logger {
	return b.logger
}

// LogWarning logs a warning message for partial failures during collection
func (b *BaseCollector) LogWarning(msg string, fields ...zap.Field) {
	b.logger.Warn(msg, fields...)
}

// LogError logs an error message
func (b *BaseCollector) LogError(msg string, fields ...zap.Field) {
	b.logger.Error(msg, fields...)
}

// LogDebug logs a debug message
func (b *BaseCollector) LogDebug(msg string, fields ...zap.Field) {
	b.logger.Debug(msg, fields...)
}
