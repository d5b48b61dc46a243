package console

import (
	"context"
	"time"
)

// Call is a backend request that has been started but not yet executed.
// Run blocks on the network and may be executed on any goroutine; its Result must be
// handed back to the Controller that issued it.
type Call struct {
	ctx        context.Context
	run        func(ctx context.Context) (any, error)
	body       any
	RequestID  string
	Op         Op
	generation uint64
}

// Run performs the request.
func (c Call) Run() Result {
	start := time.Now()
	value, err := c.run(c.ctx)

	return Result{
		Op:         c.Op,
		RequestID:  c.RequestID,
		Value:      value,
		Err:        err,
		Duration:   time.Since(start),
		body:       c.body,
		generation: c.generation,
	}
}

// Result is the outcome of a Call.
type Result struct {
	Value      any
	Err        error
	body       any
	RequestID  string
	Duration   time.Duration
	Op         Op
	generation uint64
}
