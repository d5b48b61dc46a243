package cli

import (
	"io"
	"time"
)

const spinInterval = 100 * time.Millisecond

// Await runs fn while animating a spinner on w, returning fn's results. A nil writer
// disables the spinner.
func Await[T any](w io.Writer, description string, fn func() (T, error)) (T, error) {
	if w == nil {
		return fn()
	}

	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		value, err := fn()
		done <- outcome{value: value, err: err}
	}()

	spinner := NewSpinner(w, description)
	defer spinner.Stop()

	ticker := time.NewTicker(spinInterval)
	defer ticker.Stop()

	for {
		select {
		case out := <-done:
			return out.value, out.err
		case <-ticker.C:
			spinner.Tick()
		}
	}
}
