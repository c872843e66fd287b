package worker

// email_worker.go
// Processes email jobs from QueueEmail. All SMTP traffic goes through the
// circuit breaker; failed sends are parked in the retry set with exponential
// backoff and moved to the DLQ after MaxEmailAttempts.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ReponseBlaise/Preferred-System/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// MaxEmailAttempts is the total number of delivery attempts before a job is
// moved to the dead letter queue.
const MaxEmailAttempts = 3

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	AttachmentPath string `json:"attachment_path,omitempty"`
	Attempts       int    `json:"attempts,omitempty"`
}

// EmailWorker sends queued emails through the SMTP circuit breaker.
type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

// NewEmailWorker creates an EmailWorker with the provided SMTP mailer.
func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb, rdb: rdb}
}

// Process attempts one SMTP delivery. On failure the job is either parked for
// retry or dead-lettered, never dropped silently.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body, payload.AttachmentPath)
	})
	if sendErr == nil {
		log.Info().Str("to", payload.ToEmail).Msg("email_worker: email sent successfully")
		return
	}

	payload.Attempts++
	log.Warn().
		Err(sendErr).
		Str("to", payload.ToEmail).
		Int("attempts", payload.Attempts).
		Msg("email_worker: delivery failed")

	if payload.Attempts >= MaxEmailAttempts {
		data, _ := json.Marshal(payload)
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", data,
			fmt.Sprintf("max attempts (%d) exceeded: %v", MaxEmailAttempts, sendErr),
			payload.Attempts)
		return
	}

	if err := ParkEmailForRetry(ctx, w.rdb, payload); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to park job for retry")
	}
}
