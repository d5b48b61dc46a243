package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows an indeterminate progress indicator while a backend call is outstanding.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner starts a spinner with the given description. A nil writer uses stderr.
func NewSpinner(w io.Writer, description string) *Spinner {
	if w == nil {
		w = os.Stderr
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
		progressbar.OptionClearOnFinish(),
	)

	return &Spinner{bar: bar}
}

// Tick advances the spinner animation.
func (s *Spinner) Tick() {
	if err := s.bar.Add(1); err != nil {
		slog.Debug("Failed to advance spinner", "error", err)
	}
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if err := s.bar.Finish(); err != nil {
		slog.Debug("Failed to finish spinner", "error", err)
	}
}
