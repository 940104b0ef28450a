package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// Outcome is what a per-filing operation reports back to the orchestrator.
type Outcome struct {
	Status   constants.StepStatus
	ErrMsg   string
	Skipped  bool // vacuous success: stage marked success with zero work done
	Counters map[string]int64
}

// BatchResult summarizes one stage pass over all eligible filings.
type BatchResult struct {
	Stage     constants.Stage
	Attempted int
	Succeeded int
	Failed    int
	Skipped   int
	Counters  map[string]int64
	Errors    []string
}

func (r *BatchResult) addCounters(c map[string]int64) {
	for k, v := range c {
		r.Counters[k] += v
	}
}

// Operation is a single-filing stage action. It may mutate the filing's
// documents in place; the orchestrator persists them on commit.
type Operation func(ctx context.Context, f *entity.Filing) Outcome

// Orchestrator drives a stage over every eligible filing, isolating each
// filing's failure from the rest of the batch.
type Orchestrator struct {
	repo       repository.FilingRepository
	maxRetries int
	logger     *slog.Logger
}

func NewOrchestrator(repo repository.FilingRepository, maxRetries int, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{repo: repo, maxRetries: maxRetries, logger: logger}
}

// RunStage processes every filing eligible for the stage. It never returns
// an error: fatal problems, including a failed eligibility query, surface as
// entries in the BatchResult's error list alongside whatever partial
// progress was made.
func (o *Orchestrator) RunStage(ctx context.Context, stage constants.Stage, op Operation) (result *BatchResult) {
	result = &BatchResult{Stage: stage, Counters: make(map[string]int64)}

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("stage orchestration panicked",
				"stage", stage, "panic", r, "stack", string(debug.Stack()))
			result.Errors = append(result.Errors, fmt.Sprintf("fatal: %v", r))
		}
	}()

	filings, err := o.repo.EligibleForStage(ctx, stage, o.maxRetries)
	if err != nil {
		o.logger.Error("eligibility query failed", "stage", stage, "error", err)
		result.Errors = append(result.Errors, fmt.Sprintf("eligibility query: %v", err))
		return result
	}

	o.logger.Info("stage starting", "stage", stage, "eligible", len(filings))

	for _, f := range filings {
		result.Attempted++
		o.runItem(ctx, stage, f, op, result)
	}

	o.logger.Info("stage complete",
		"stage", stage,
		"attempted", result.Attempted,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"errors", len(result.Errors))
	return result
}

// runItem executes one filing inside a failure boundary. A panic in the
// operation marks this filing failed and lets the batch continue.
func (o *Orchestrator) runItem(ctx context.Context, stage constants.Stage, f *entity.Filing, op Operation, result *BatchResult) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("filing operation panicked",
				"stage", stage, "external_id", f.ExternalID, "panic", r, "stack", string(debug.Stack()))
			msg := fmt.Sprintf("unexpected error: %v", r)
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", f.ExternalID, msg))
			if err := o.repo.Transition(ctx, f.ExternalID, stage, constants.StatusFailed, msg); err != nil {
				o.logger.Error("failed to record panic outcome",
					"stage", stage, "external_id", f.ExternalID, "error", err)
			}
		}
	}()

	out := op(ctx, f)
	result.addCounters(out.Counters)

	errMsg := ""
	if out.Status == constants.StatusFailed {
		errMsg = out.ErrMsg
	}
	if err := o.repo.CommitStageResult(ctx, f, stage, out.Status, errMsg); err != nil {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: commit: %v", f.ExternalID, err))
		return
	}

	switch {
	case out.Skipped:
		result.Skipped++
	case out.Status == constants.StatusSuccess:
		result.Succeeded++
	default:
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", f.ExternalID, out.ErrMsg))
	}
}
