package actions

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"vaccine-assistant/internal/catalogue"
	"vaccine-assistant/internal/common/config"
	apperrors "vaccine-assistant/internal/common/errors"
	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/common/metrics"
	"vaccine-assistant/internal/common/observability"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/models"
	"vaccine-assistant/internal/outofscope"
	"vaccine-assistant/internal/resolver"
)

// ErrActionNotFound is returned for names that are not registered.
var ErrActionNotFound = errors.New("ACTION_NOT_FOUND")

// FactSource returns merged vaccine facts; it never fails.
type FactSource interface {
	Fetch(ctx context.Context, name string) models.FactBundle
}

// Catalogue is the part of the remote API actions query directly.
type Catalogue interface {
	SchedulesByAge(ctx context.Context, age string) ([]catalogue.Schedule, error)
	HealthCenters(ctx context.Context) ([]catalogue.HealthCenter, error)
}

// Recorder persists out-of-scope queries.
type Recorder interface {
	Record(ctx context.Context, entry models.OutOfScopeEntry) outofscope.Outcome
}

// Deps are the collaborators shared by every action.
type Deps struct {
	Resolver  *resolver.Resolver
	Knowledge *knowledge.Base
	Facts     FactSource
	Catalogue Catalogue
	Recorder  Recorder
	Logger    logger.Logger
}

// Options tune registration and instrumentation.
type Options struct {
	Actions       map[string]config.ActionConfig
	Observability *observability.Observability
}

// Dispatcher runs actions by name. A failing or panicking handler never
// escapes: the caller gets an apology response instead.
type Dispatcher struct {
	handlers   map[string]Handler
	timeouts   map[string]time.Duration
	obs        *observability.Observability
	errHandler *apperrors.ErrorHandler
	logger     logger.Logger
}

// NewDispatcher registers every built-in action that is not disabled.
func NewDispatcher(deps Deps, opts Options) *Dispatcher {
	if deps.Logger == nil {
		deps.Logger = logger.NewNoOpLogger()
	}
	d := &Dispatcher{
		handlers:   make(map[string]Handler),
		timeouts:   make(map[string]time.Duration),
		obs:        opts.Observability,
		errHandler: apperrors.NewErrorHandler(deps.Logger),
		logger:     deps.Logger,
	}

	for _, h := range builtins(&deps) {
		name := h.Name()
		if ac, ok := opts.Actions[name]; ok {
			if !ac.Enabled {
				d.logger.Info("action disabled", map[string]interface{}{"action": name})
				continue
			}
			if ac.Timeout > 0 {
				d.timeouts[name] = config.GetDuration(ac.Timeout)
			}
		}
		d.Register(h)
	}
	return d
}

func builtins(deps *Deps) []Handler {
	return []Handler{
		newPriceHandler(deps),
		newInfoHandler(deps),
		newAgeHandler(deps),
		newSideEffectsHandler(deps),
		newSymptomHandler(deps),
		newScheduleHandler(deps),
		newPreVaccinationHandler(deps),
		newPostVaccinationHandler(deps),
		newLocationHandler(deps),
		newDiseaseHandler(deps),
		newConditionHandler(deps),
		newFallbackHandler(deps),
		newBotChallengeHandler(deps),
		newEvaluateHandler(deps),
		newOutOfScopeHandler(deps),
		newAnalyzeHandler(deps),
		newAnnotateHandler(deps),
		newResetHandler(deps),
		newValidatePriceFormHandler(deps),
	}
}

// Register adds or replaces a handler.
func (d *Dispatcher) Register(h Handler) {
	d.handlers[h.Name()] = h
}

// Has reports whether name is registered.
func (d *Dispatcher) Has(name string) bool {
	_, ok := d.handlers[name]
	return ok
}

// Names returns registered action names, sorted.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named action against turn. The only error returned is
// ErrActionNotFound.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, turn *Turn) (*Result, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}
	if turn == nil {
		turn = &Turn{}
	}

	if timeout, ok := d.timeouts[name]; ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, span := d.obs.StartSpan(ctx, name,
		attribute.String("action", name),
		attribute.String("sender_id", turn.SenderID),
	)
	defer span.End()

	metrics.ActionsActive.WithLabelValues(name).Inc()
	defer metrics.ActionsActive.WithLabelValues(name).Dec()

	start := time.Now()
	result, failure := d.run(ctx, h, turn)

	status := "ok"
	if failure != nil {
		status = "failed"
		span.RecordError(failure)
		span.SetStatus(codes.Error, string(failure.Code))
		metrics.ActionsFailed.WithLabelValues(name, string(failure.Code)).Inc()
		result = NewResult()
		result.Utter(UtterActionFailed)
	} else {
		metrics.ActionsCompleted.WithLabelValues(name).Inc()
	}

	elapsed := time.Since(start)
	metrics.ActionDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	d.obs.RecordActionProcessed(ctx, name, status)
	d.obs.RecordActionDuration(ctx, name, elapsed, status)

	d.logger.Debug("action completed", map[string]interface{}{
		"action":    name,
		"senderId":  turn.SenderID,
		"status":    status,
		"events":    len(result.Events),
		"responses": len(result.Responses),
		"duration":  elapsed.String(),
	})
	return result.normalize(), nil
}

func (d *Dispatcher) run(ctx context.Context, h Handler, turn *Turn) (result *Result, failure *apperrors.StandardError) {
	defer func() {
		if r := recover(); r != nil {
			result, failure = nil, d.errHandler.HandlePanic(h.Name(), r)
		}
	}()

	res, err := h.Run(ctx, turn)
	if err != nil {
		return nil, d.errHandler.Handle(h.Name(), err)
	}
	if res == nil {
		res = NewResult()
	}
	return res, nil
}
