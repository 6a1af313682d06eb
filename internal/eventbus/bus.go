package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grachmannico95/taxbit-export/pkg/logger"
	"github.com/grachmannico95/taxbit-export/pkg/retry"
)

var (
	ErrNoConsumer     = errors.New("no consumer subscribed")
	ErrAlreadyStarted = errors.New("event bus already started")
	ErrBusClosed      = errors.New("event bus closed")
)

// Consumer handles events of the type it is subscribed to. GetWorkerCount
// sizes its worker pool; anything below one runs a single worker.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}

// GiveUpHandler is implemented by consumers that want to hear about an event
// the bus stopped retrying.
type GiveUpHandler interface {
	OnGiveUp(ctx context.Context, event Event, cause error)
}

type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type eventBus struct {
	channels      map[EventType]chan Event
	consumers     map[EventType][]Consumer
	mu            sync.RWMutex
	wg            sync.WaitGroup
	publishing    sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxRetries    int
	retryDelay    time.Duration
	started       bool
	closed        bool
	done          chan struct{} // closed when Shutdown begins
	drain         chan struct{} // closed once no publisher can send
	drainOnce     sync.Once
}

type Config struct {
	ChannelBuffer  int
	MaxRetries     int
	RetryBaseDelay time.Duration
}

func New(log *logger.Logger, cfg *Config) EventBus {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer:  1000,
			MaxRetries:     5,
			RetryBaseDelay: time.Second,
		}
	}
	retryDelay := cfg.RetryBaseDelay
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	return &eventBus{
		channels:      make(map[EventType]chan Event),
		consumers:     make(map[EventType][]Consumer),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    retryDelay,
		done:          make(chan struct{}),
		drain:         make(chan struct{}),
	}
}

func (eb *eventBus) Subscribe(eventType EventType, consumer Consumer) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.started || eb.closed {
		return ErrAlreadyStarted
	}

	if _, exists := eb.channels[eventType]; !exists {
		eb.channels[eventType] = make(chan Event, eb.channelBuffer)
	}

	eb.consumers[eventType] = append(eb.consumers[eventType], consumer)

	return nil
}

func (eb *eventBus) Start(ctx context.Context) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if eb.closed {
		return ErrBusClosed
	}
	if eb.started {
		return nil
	}

	eb.ctx, eb.cancel = context.WithCancel(ctx)

	for eventType, consumers := range eb.consumers {
		ch := eb.channels[eventType]

		for _, consumer := range consumers {
			workerCount := max(consumer.GetWorkerCount(), 1)
			eb.logger.Info(eb.ctx, "Starting workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				eb.wg.Add(1)
				go eb.worker(eb.ctx, ch, consumer, i)
			}
		}
	}

	eb.started = true
	eb.logger.Info(eb.ctx, "Event bus started")

	return nil
}

func (eb *eventBus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer eb.wg.Done()

	eb.logger.Debug(ctx, "Worker started", "worker_id", workerID)

	for {
		select {
		case <-ctx.Done():
			eb.logger.Debug(ctx, "Worker stopping", "worker_id", workerID)
			return
		case <-eb.drain:
			eb.drainQueue(ctx, ch, consumer, workerID)
			eb.logger.Debug(ctx, "Queue drained, worker stopping", "worker_id", workerID)
			return
		case event := <-ch:
			eb.processEvent(ctx, event, consumer, workerID)
		}
	}
}

func (eb *eventBus) drainQueue(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-ch:
			eb.processEvent(ctx, event, consumer, workerID)
		default:
			return
		}
	}
}

func (eb *eventBus) processEvent(ctx context.Context, event Event, consumer Consumer, workerID int) {
	// Create context with event ID for tracing
	eventCtx := ctx
	if event.ID != "" {
		eventCtx = logger.WithTraceID(ctx, event.ID)
	}

	eb.logger.Debug(eventCtx, "Processing event",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
	)

	// Retry with exponential backoff
	attempt := 0
	err := retry.Do(eventCtx, func() error {
		event.Retries = attempt
		attempt++
		return consumer.Consume(eventCtx, event)
	}, retry.WithMaxAttempts(eb.maxRetries), retry.WithBaseDelay(eb.retryDelay))

	if err == nil {
		eb.logger.Debug(eventCtx, "Event processed successfully",
			"event_id", event.ID,
			"event_type", event.Type,
			"worker_id", workerID,
		)
		return
	}

	eb.logger.Error(eventCtx, "Failed to process event after retries",
		"event_id", event.ID,
		"event_type", event.Type,
		"worker_id", workerID,
		"error", err,
	)

	if h, ok := consumer.(GiveUpHandler); ok {
		// the worker context may already be cancelled by Shutdown
		h.OnGiveUp(context.WithoutCancel(eventCtx), event, err)
	}
}

func (eb *eventBus) Publish(ctx context.Context, event Event) error {
	eb.mu.RLock()
	if eb.closed {
		eb.mu.RUnlock()
		return ErrBusClosed
	}
	ch, exists := eb.channels[event.Type]
	if exists {
		eb.publishing.Add(1)
	}
	eb.mu.RUnlock()

	if !exists {
		eb.logger.Warn(ctx, "No channel for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return fmt.Errorf("%w: %s", ErrNoConsumer, event.Type)
	}
	defer eb.publishing.Done()

	// Blocks while the channel is full; ingestion slows down instead of
	// losing rows.
	select {
	case ch <- event:
		eb.logger.Debug(ctx, "Event published",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	case <-eb.done:
		eb.logger.Warn(ctx, "Publish aborted by shutdown",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ErrBusClosed
	case <-ctx.Done():
		eb.logger.Warn(ctx, "Publish cancelled",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return ctx.Err()
	}
}

// Shutdown stops accepting events and lets the workers drain what is
// queued. When ctx expires first the workers are cancelled.
func (eb *eventBus) Shutdown(ctx context.Context) error {
	eb.logger.Info(ctx, "Shutting down event bus")

	eb.mu.Lock()
	if !eb.closed {
		eb.closed = true
		close(eb.done)
	}
	eb.mu.Unlock()

	// publishers blocked on a full channel return as soon as done is closed
	if err := eb.wait(ctx, &eb.publishing); err != nil {
		eb.stopWorkers()
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return err
	}

	eb.drainOnce.Do(func() { close(eb.drain) })

	if err := eb.wait(ctx, &eb.wg); err != nil {
		eb.stopWorkers()
		eb.logger.Warn(ctx, "Event bus shutdown timeout")
		return err
	}

	eb.stopWorkers()
	eb.logger.Info(ctx, "Event bus shutdown complete")

	return nil
}

func (eb *eventBus) wait(ctx context.Context, wg *sync.WaitGroup) error {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (eb *eventBus) stopWorkers() {
	eb.mu.RLock()
	cancel := eb.cancel
	eb.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
}
