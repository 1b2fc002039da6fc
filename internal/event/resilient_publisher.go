package event

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mt2web/mt2web/internal/logger"
)

// ResilientPublisher wraps a Bus with asynchronous retries and a dead-letter file.
// A failed publish is queued and retried with exponential backoff; events that
// exhaust their retries or overflow the queue are written to the dead-letter file.
type ResilientPublisher struct {
	bus          Bus
	retryQueue   chan retryEntry
	maxRetries   int
	retryDelay   time.Duration
	deadLetter   *DeadLetterWriter
	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

type retryEntry struct {
	event     Event
	attempt   int // retries performed so far
	nextRetry time.Time
	lastErr   error
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	rp.wg.Add(1)
	go rp.retryWorker()
	return rp, nil
}

// Publish implements Publisher. Failures are retried in the background, so
// the caller never sees a delivery error.
func (rp *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	rp.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (rp *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	rp.bus.Subscribe(eventType, handler)
}

// PublishWithRetry attempts one synchronous delivery and queues a retry on failure
func (rp *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := rp.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	rp.enqueue(retryEntry{
		event:     event,
		attempt:   0,
		nextRetry: time.Now().Add(CalculateRetryDelay(rp.retryDelay, 1)),
		lastErr:   err,
	})
}

func (rp *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case rp.retryQueue <- entry:
	default:
		logger.FromContext(context.Background()).Error(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		rp.writeDeadLetter(entry, LogMsgDeadLetterWriteFailed)
	}
}

func (rp *ResilientPublisher) retryWorker() {
	defer rp.wg.Done()

	for {
		select {
		case entry := <-rp.retryQueue:
			if !rp.waitUntil(entry.nextRetry) {
				rp.finalAttempt(entry)
				rp.drain()
				return
			}
			rp.retry(entry)
		case <-rp.shutdown:
			rp.drain()
			return
		}
	}
}

// waitUntil sleeps until t and reports false if shutdown interrupted the wait
func (rp *ResilientPublisher) waitUntil(t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-rp.shutdown:
		return false
	}
}

func (rp *ResilientPublisher) retry(entry retryEntry) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	entry.attempt++
	err := rp.bus.Publish(ctx, entry.event)
	if err == nil {
		log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
		return
	}
	entry.lastErr = err

	if entry.attempt >= rp.maxRetries {
		log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempt)
		rp.writeDeadLetter(entry, LogMsgDeadLetterWriteFailed)
		return
	}

	log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
	entry.nextRetry = time.Now().Add(CalculateRetryDelay(rp.retryDelay, entry.attempt+1))
	rp.enqueue(entry)
}

// finalAttempt tries once more without waiting, dead-lettering on failure
func (rp *ResilientPublisher) finalAttempt(entry retryEntry) {
	entry.attempt++
	if err := rp.bus.Publish(context.Background(), entry.event); err != nil {
		entry.lastErr = err
		rp.writeDeadLetter(entry, LogMsgDeadLetterWriteFailedS)
	}
}

func (rp *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-rp.retryQueue:
			rp.finalAttempt(entry)
			drained++
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (rp *ResilientPublisher) writeDeadLetter(entry retryEntry, failMsg string) {
	if rp.deadLetter == nil {
		return
	}
	if err := rp.deadLetter.Write(entry.event, entry.attempt+1, entry.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(failMsg, "error", err)
	}
}

// Shutdown stops the retry worker after one last delivery attempt per queued event.
// It returns an error if ctx expires first.
func (rp *ResilientPublisher) Shutdown(ctx context.Context) error {
	rp.shutdownOnce.Do(func() { close(rp.shutdown) })

	done := make(chan struct{})
	go func() {
		rp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if rp.deadLetter != nil {
			return rp.deadLetter.Close()
		}
		return nil
	case <-ctx.Done():
		logger.FromContext(ctx).Error(LogMsgShutdownTimeout)
		return errors.Join(errors.New(LogMsgShutdownTimeout), ctx.Err())
	}
}

var _ Bus = (*ResilientPublisher)(nil)
