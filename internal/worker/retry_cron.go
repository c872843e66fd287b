package worker

// retry_cron.go
// Background goroutine that re-enqueues parked email jobs once their backoff
// expires. Parked jobs live in a Redis sorted set keyed by next-attempt time.
// Uses the Circuit Breaker to avoid hammering a downed SMTP relay.

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// RetryKeyEmail is the sorted set holding parked email jobs,
	// scored by the unix time of their next attempt.
	RetryKeyEmail = "retry:email"

	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// ParkEmailForRetry schedules a failed email job for a later attempt.
// Backoff schedule: attempt 1 → 1m, attempt 2 → 2m, attempt 3 → 4m.
func ParkEmailForRetry(ctx context.Context, rdb *redis.Client, payload EmailJobPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	backoff := time.Duration(1<<uint(payload.Attempts-1)) * time.Minute
	nextAttempt := time.Now().Add(backoff)

	if err := rdb.ZAdd(ctx, RetryKeyEmail, redis.Z{
		Score:  float64(nextAttempt.Unix()),
		Member: data,
	}).Err(); err != nil {
		return err
	}

	log.Warn().
		Str("to", payload.ToEmail).
		Int("attempts", payload.Attempts).
		Time("next_attempt", nextAttempt).
		Msg("retry_cron: email parked for retry")
	return nil
}

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRetryCron launches a background goroutine that ticks every 30s and
// moves due parked jobs back onto QueueEmail. It respects the context for
// graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed relay
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	due, err := cfg.RDB.ZRangeByScore(ctx, RetryKeyEmail, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(time.Now().Unix(), 10),
		Count: retryBatchSize,
	}).Result()
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query parked jobs")
		return
	}
	if len(due) == 0 {
		return
	}

	log.Info().Int("count", len(due)).Msg("retry_cron: re-enqueueing due email jobs")

	for _, raw := range due {
		// Check CB state before each job — it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}

		// Remove first so a crashed re-enqueue loses the job at most once
		// rather than duplicating it every tick.
		if removed, err := cfg.RDB.ZRem(ctx, RetryKeyEmail, raw).Result(); err != nil || removed == 0 {
			continue
		}

		job := Job{Type: "email", Payload: json.RawMessage(raw)}
		encoded, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to marshal job")
			continue
		}
		if err := cfg.RDB.LPush(ctx, QueueEmail, encoded).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-enqueue job")
			continue
		}
	}
}
