package trigger

import (
	"context"
	"log/slog"
	"sync"
)

// Sender is the host-provided primitive that delivers one chat turn.
// humanMessage is shown to the user in the transcript; machineText carries
// the encoded trigger block for the agent.
type Sender interface {
	Send(ctx context.Context, humanMessage, machineText string) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, humanMessage, machineText string) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, humanMessage, machineText string) error {
	return f(ctx, humanMessage, machineText)
}

const defaultQueueSize = 64

// Dispatcher delivers triggers to the agent without blocking the caller.
// Fire enqueues and returns immediately; a single goroutine drains the queue
// in order. There is no retry and no cancellation of in-flight sends; the
// UI re-derives its state from the selection store rather than from the
// outcome of any particular send.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan outbound
	done   chan struct{}
}

type outbound struct {
	human   string
	machine string
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger for send failures and dropped triggers.
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithQueueSize sets the outbound queue capacity.
func WithQueueSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.queue = make(chan outbound, n)
		}
	}
}

// NewDispatcher creates a dispatcher and starts its sender goroutine.
// Call Close to drain and stop it.
func NewDispatcher(sender Sender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: slog.Default(),
		queue:  make(chan outbound, defaultQueueSize),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	go d.drain()
	return d
}

// Fire encodes a trigger and enqueues it together with its transcript
// summary. It never blocks: when the queue is full or the dispatcher is
// closed the trigger is dropped and logged. An action outside the vocabulary
// is a programming error and is likewise dropped.
func (d *Dispatcher) Fire(action Action, payload any, humanMessage string) {
	if !action.Valid() {
		d.logger.Error("dropping trigger with unknown action", "action", string(action))
		return
	}

	machine, err := New(action, payload).Encode()
	if err != nil {
		d.logger.Error("dropping unencodable trigger", "action", string(action), "error", err)
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("dispatcher closed, dropping trigger", "action", string(action))
		return
	}

	select {
	case d.queue <- outbound{human: humanMessage, machine: machine}:
	default:
		d.logger.Warn("outbound queue full, dropping trigger", "action", string(action))
	}
}

// Close stops accepting triggers, drains the queue, and waits for the sender
// goroutine to exit.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) drain() {
	defer close(d.done)
	for ob := range d.queue {
		if err := d.sender.Send(context.Background(), ob.human, ob.machine); err != nil {
			d.logger.Error("trigger send failed", "error", err)
		}
	}
}
