package opener

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/browser"
)

// Opener handles opening URLs in the browser
type Opener struct {
	logger *slog.Logger
	open   func(url string) error
	mu     sync.Mutex
}

// New creates a new Opener backed by the system browser.
func New(logger *slog.Logger) *Opener {
	return &Opener{
		logger: logger,
		open:   browser.OpenURL,
	}
}

// NewWithFunc creates an Opener that calls open instead of the system browser.
func NewWithFunc(logger *slog.Logger, open func(url string) error) *Opener {
	return &Opener{
		logger: logger,
		open:   open,
	}
}

// OpenURL opens a URL in the default browser
func (o *Opener) OpenURL(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.logger.Info("opening console in browser", "url", url)

	if err := o.open(url); err != nil {
		o.logger.Error("failed to open URL", "url", url, "error", err)
		return fmt.Errorf("failed to open URL: %w", err)
	}

	return nil
}
