package app

import (
	"errors"
	"io"

	"go.trai.ch/ladder/internal/core/ports"
)

// Components contains the initialized application components used by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Metrics renders the collected metrics in the Prometheus text format.
	Metrics interface{ WriteText(w io.Writer) error }

	closers []io.Closer
}

// NewComponents creates a Components. closers are released by Close in order.
func NewComponents(app *App, log ports.Logger, metrics interface{ WriteText(w io.Writer) error }, closers ...io.Closer) *Components {
	return &Components{
		App:     app,
		Logger:  log,
		Metrics: metrics,
		closers: closers,
	}
}

// Close releases the telemetry session and open cache databases.
func (c *Components) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
