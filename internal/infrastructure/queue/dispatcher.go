package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aspirecareer/consultancy-api/internal/api/metrics"
	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	maxAttempts    = 3
	baseBackoff    = 2 * time.Second
)

// MailDispatcher delivers queued email on a fixed set of workers, sharded by
// recipient so mail to the same address keeps its enqueue order. Delivery is
// best effort: failed sends are retried with exponential backoff and finally
// logged, never surfaced to the request that queued them.
type MailDispatcher struct {
	workers []chan ports.Email
	mailer  ports.Mailer
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan ports.Email, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Email, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx bounds in-flight deliveries and
// their retry backoff; workers run until Stop closes the queues.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go func(id int, ch chan ports.Email) {
			defer d.wg.Done()
			d.runWorker(ctx, id, ch)
		}(i, ch)
	}
}

// Stop closes the worker queues and waits for buffered mail to drain, up to
// ctx's deadline. Stop must only be called once no more Enqueue calls can
// arrive, i.e. after the HTTP server has shut down.
func (d *MailDispatcher) Stop(ctx context.Context) {
	for _, ch := range d.workers {
		close(ch)
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		d.log.Warn().Msg("mail queue drain interrupted, buffered mail lost")
	}
}

// Enqueue hands an email to the worker responsible for its recipient.
// Non-blocking: when the shard's buffer is full the email is dropped and
// logged, so a mail backlog can never stall a request.
func (d *MailDispatcher) Enqueue(email ports.Email) {
	idx := d.shardIndex(email.To)
	select {
	case d.workers[idx] <- email:
		metrics.MailQueueDepth.WithLabelValues(workerLabel(idx)).Inc()
	default:
		d.log.Warn().Str("to", email.To).Str("subject", email.Subject).
			Msg("mail queue full, dropping message")
		metrics.MailDroppedTotal.Inc()
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Email) {
	for email := range ch {
		metrics.MailQueueDepth.WithLabelValues(workerLabel(id)).Dec()
		d.deliver(ctx, id, email)
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, id int, email ports.Email) {
	backoff := baseBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := d.mailer.Send(ctx, email)
		if err == nil {
			metrics.MailSentTotal.Inc()
			return
		}

		d.log.Warn().Err(err).
			Str("to", email.To).
			Int("worker_id", id).
			Int("attempt", attempt).
			Msg("mail delivery failed")

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	metrics.MailFailedTotal.Inc()
	d.log.Error().Str("to", email.To).Str("subject", email.Subject).
		Msg("mail delivery abandoned after retries")
}

func workerLabel(id int) string {
	return strconv.Itoa(id)
}
