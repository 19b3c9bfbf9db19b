package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	publishTimeout = 5 * time.Second
)

// Dispatcher delivers directory events to a publisher from a fixed set of
// workers. Events are sharded on SubjectID, so events about one entity are
// published in the order they were enqueued.
type Dispatcher struct {
	workers   []chan ports.DirectoryEvent
	publisher ports.EventPublisher
	log       zerolog.Logger
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, publisher ports.EventPublisher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.DirectoryEvent, numWorkers),
		publisher: publisher,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DirectoryEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain what is already queued
// and stop once ctx is cancelled; Wait blocks until they have.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands the event to the worker responsible for its subject. It never
// blocks: when that worker's buffer is full the event is dropped and logged.
func (d *Dispatcher) Enqueue(event ports.DirectoryEvent) {
	idx := d.shardIndex(event.SubjectID)
	select {
	case d.workers[idx] <- event:
		eventsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		eventsDroppedTotal.WithLabelValues(event.Type).Inc()
		d.log.Warn().
			Str("type", event.Type).
			Str("subject_id", event.SubjectID).
			Int("worker_id", idx).
			Msg("event queue full, dropping event")
	}
}

// shardIndex maps a subject id deterministically to a worker index.
func (d *Dispatcher) shardIndex(subjectID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(subjectID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DirectoryEvent) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch)
			return
		case event := <-ch:
			eventsQueueDepth.WithLabelValues(label).Dec()
			d.publish(ctx, id, event)
		}
	}
}

// drain publishes whatever is still buffered after shutdown was requested.
func (d *Dispatcher) drain(id int, ch <-chan ports.DirectoryEvent) {
	label := strconv.Itoa(id)
	for {
		select {
		case event := <-ch:
			eventsQueueDepth.WithLabelValues(label).Dec()
			d.publish(context.Background(), id, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) publish(ctx context.Context, id int, event ports.DirectoryEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, event); err != nil {
		eventsPublishedTotal.WithLabelValues(event.Type, "error").Inc()
		d.log.Error().Err(err).
			Str("type", event.Type).
			Str("subject_id", event.SubjectID).
			Int("worker_id", id).
			Msg("event publish failed")
		return
	}
	eventsPublishedTotal.WithLabelValues(event.Type, "ok").Inc()
}
