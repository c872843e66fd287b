package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReport = "jobs:report"
	QueueEmail  = "jobs:email"
)

// Job is the envelope every queue entry travels in.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler consumes one dequeued payload. Retries and dead-lettering are the
// handler's responsibility; the pool only moves jobs.
type Handler func(ctx context.Context, raw json.RawMessage)

// Handlers maps queue name to its consumer.
type Handlers map[string]Handler

// Dispatcher pushes jobs onto redis lists; the pool pops them with BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReport queues a payroll-run report render.
func (d *Dispatcher) EnqueueReport(ctx context.Context, payload any) error {
	return d.enqueue(ctx, QueueReport, "report", payload)
}

// EnqueueEmail queues an outbound email.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, payload any) error {
	return d.enqueue(ctx, QueueEmail, "email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches size goroutines, each blocking on BRPOP across
// every registered queue. Idle workers cost nothing; cancellation of ctx
// drains them.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, size int, handlers Handlers) {
	queues := make([]string, 0, len(handlers))
	for q := range handlers {
		queues = append(queues, q)
	}

	for i := 0; i < size; i++ {
		go func(id int) {
			for {
				select {
				case <-ctx.Done():
					log.Info().Int("worker", id).Msg("worker stopped")
					return
				default:
				}

				// Short BRPOP timeout so ctx cancellation is noticed
				res, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
				if err != nil || len(res) != 2 {
					continue
				}
				dispatch(ctx, handlers, res[0], res[1])
			}
		}(i)
	}
	log.Info().Int("size", size).Strs("queues", queues).Msg("worker pool started")
}

func dispatch(ctx context.Context, handlers Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("worker: malformed job discarded")
		return
	}
	h, ok := handlers[queue]
	if !ok {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("worker: no handler for queue")
		return
	}
	log.Info().Str("queue", queue).Str("type", job.Type).Msg("worker: job picked up")
	h(ctx, job.Payload)
}
