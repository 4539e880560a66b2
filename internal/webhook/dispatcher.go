package webhook

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// EventHandler processes a single event end to end.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev Event) error
}

// Result is the settled outcome of one event's handling.
type Result struct {
	Event Event
	Err   error
}

// Dispatcher fans a batch of events out to the handler, one goroutine
// per event, and collects every outcome before returning. Handlers share
// no mutable state: each goroutine writes only its own result slot.
type Dispatcher struct {
	handler EventHandler
	logger  zerolog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(handler EventHandler, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{handler: handler, logger: logger}
}

// Dispatch handles all events concurrently and waits for the full batch
// to settle. A failure — or panic — in one handler never affects its
// siblings or the batch barrier.
func (d *Dispatcher) Dispatch(ctx context.Context, events []Event) []Result {
	results := make([]Result, len(events))

	var wg sync.WaitGroup
	for i, ev := range events {
		wg.Add(1)
		go func(i int, ev Event) {
			defer wg.Done()
			results[i] = Result{Event: ev, Err: d.handleOne(ctx, ev)}
		}(i, ev)
	}
	wg.Wait()

	for _, res := range results {
		if res.Err != nil {
			d.logger.Error().Err(res.Err).
				Str("event_type", res.Event.Type).
				Msg("event handling failed")
		} else {
			d.logger.Debug().
				Str("event_type", res.Event.Type).
				Msg("event handled")
		}
	}

	return results
}

func (d *Dispatcher) handleOne(ctx context.Context, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("event handler panicked: %v", r)
		}
	}()
	return d.handler.HandleEvent(ctx, ev)
}
