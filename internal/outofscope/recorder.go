package outofscope

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/metrics"
	"vaccine-assistant/internal/models"
)

// Outcome is what happened to one recorded query.
type Outcome string

const (
	OutcomeIgnored   Outcome = "ignored"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeSaved     Outcome = "saved"
	OutcomeFailed    Outcome = "failed"
)

// Sink persists out-of-scope entries, deduplicated on the exact user input.
type Sink interface {
	Name() string
	Contains(ctx context.Context, userInput string) (bool, error)
	// Append stores entry and reports false when the input already existed.
	Append(ctx context.Context, entry models.OutOfScopeEntry) (bool, error)
}

// Recorder classifies, deduplicates and appends out-of-scope queries. The
// check and the append are serialized within the process only.
type Recorder struct {
	sink       Sink
	classifier *Classifier
	log        logger.Logger
	now        func() time.Time

	mu sync.Mutex
}

func NewRecorder(sink Sink, log logger.Logger) *Recorder {
	return &Recorder{
		sink:       sink,
		classifier: NewClassifier(),
		log:        log.WithFields(map[string]interface{}{"sink": sink.Name()}),
		now:        time.Now,
	}
}

// Record never returns an error; persistence failures are logged.
func (r *Recorder) Record(ctx context.Context, entry models.OutOfScopeEntry) Outcome {
	outcome := r.record(ctx, entry)
	metrics.OutOfScopeQueries.WithLabelValues(string(outcome)).Inc()
	return outcome
}

func (r *Recorder) record(ctx context.Context, entry models.OutOfScopeEntry) Outcome {
	if entry.Intent == "" {
		entry.Intent = "unknown"
	}
	if !r.classifier.IsRelated(strings.ToLower(entry.UserInput), entry.Intent) {
		r.log.Info("skipping unrelated out-of-scope query", map[string]interface{}{
			"userInput": entry.UserInput,
			"intent":    entry.Intent,
		})
		return OutcomeIgnored
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	exists, err := r.sink.Contains(ctx, entry.UserInput)
	if err != nil {
		r.log.WithError(apperrors.NewLogReadFailedError(r.sink.Name(), err)).
			Error("duplicate check failed, appending anyway", map[string]interface{}{"userInput": entry.UserInput})
	}
	if exists {
		r.log.Info("duplicate out-of-scope query, not saving", map[string]interface{}{"userInput": entry.UserInput})
		return OutcomeDuplicate
	}

	inserted, err := r.sink.Append(ctx, entry)
	if err != nil {
		r.log.WithError(apperrors.NewLogWriteFailedError(r.sink.Name(), err)).
			Error("failed to save out-of-scope query", map[string]interface{}{"userInput": entry.UserInput})
		return OutcomeFailed
	}
	if !inserted {
		return OutcomeDuplicate
	}

	r.log.Info("saved out-of-scope query", map[string]interface{}{
		"userInput": entry.UserInput,
		"intent":    entry.Intent,
	})
	return OutcomeSaved
}
