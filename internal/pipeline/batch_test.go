package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

type commitRecord struct {
	ExternalID string
	Stage      constants.Stage
	Status     constants.StepStatus
	ErrMsg     string
}

// fakeRepo is an in-memory FilingRepository for orchestrator tests.
type fakeRepo struct {
	eligible    []*entity.Filing
	eligibleErr error
	commits     []commitRecord
	transitions []commitRecord
	commitErr   error
	existing    map[string]bool
	created     []*repository.CreateFilingRequest
}

func (r *fakeRepo) Create(ctx context.Context, req *repository.CreateFilingRequest) (*entity.Filing, error) {
	r.created = append(r.created, req)
	return &entity.Filing{ID: uuid.New(), ExternalID: req.ExternalID}, nil
}

func (r *fakeRepo) Exists(ctx context.Context, externalID string) (bool, error) {
	return r.existing[externalID], nil
}

func (r *fakeRepo) GetByExternalID(ctx context.Context, externalID string) (*entity.Filing, error) {
	for _, f := range r.eligible {
		if f.ExternalID == externalID {
			return f, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) EligibleForStage(ctx context.Context, stage constants.Stage, maxRetries int) ([]*entity.Filing, error) {
	if r.eligibleErr != nil {
		return nil, r.eligibleErr
	}
	return r.eligible, nil
}

func (r *fakeRepo) Transition(ctx context.Context, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	r.transitions = append(r.transitions, commitRecord{externalID, stage, status, errMsg})
	return nil
}

func (r *fakeRepo) CommitStageResult(ctx context.Context, f *entity.Filing, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.commits = append(r.commits, commitRecord{f.ExternalID, stage, status, errMsg})
	f.SetStageStatus(stage, status)
	return nil
}

func (r *fakeRepo) CountUnprocessed(ctx context.Context, maxRetries int) (int, error) {
	return len(r.eligible), nil
}

func (r *fakeRepo) AnalyzedFilings(ctx context.Context) ([]*entity.Filing, error) {
	return nil, nil
}

func filingWithID(id string) *entity.Filing {
	return &entity.Filing{
		ID:               uuid.New(),
		ExternalID:       id,
		StatusScraped:    constants.StatusSuccess,
		StatusDownloaded: constants.StatusPending,
		StatusExtracted:  constants.StatusPending,
		StatusAnalyzed:   constants.StatusPending,
		StatusNotified:   constants.StatusPending,
	}
}

func TestRunStageAllSucceed(t *testing.T) {
	repo := &fakeRepo{eligible: []*entity.Filing{filingWithID("C1"), filingWithID("C2")}}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageDownloaded, func(ctx context.Context, f *entity.Filing) Outcome {
		return Outcome{Status: constants.StatusSuccess, Counters: map[string]int64{"units": 1}}
	})

	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, int64(2), res.Counters["units"])
	require.Len(t, repo.commits, 2)
	assert.Equal(t, constants.StatusSuccess, repo.commits[0].Status)
}

func TestRunStageFailureIsolated(t *testing.T) {
	repo := &fakeRepo{eligible: []*entity.Filing{filingWithID("C1"), filingWithID("C2"), filingWithID("C3")}}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageDownloaded, func(ctx context.Context, f *entity.Filing) Outcome {
		if f.ExternalID == "C2" {
			return Outcome{Status: constants.StatusFailed, ErrMsg: "connection reset"}
		}
		return Outcome{Status: constants.StatusSuccess}
	})

	assert.Equal(t, 3, res.Attempted)
	assert.Equal(t, 2, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "C2")
	assert.Contains(t, res.Errors[0], "connection reset")

	// The failing filing's commit carries the error message for retry
	// accounting; the others carry none.
	require.Len(t, repo.commits, 3)
	assert.Equal(t, "connection reset", repo.commits[1].ErrMsg)
	assert.Empty(t, repo.commits[0].ErrMsg)
}

func TestRunStagePanicIsolated(t *testing.T) {
	repo := &fakeRepo{eligible: []*entity.Filing{filingWithID("C1"), filingWithID("C2")}}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageExtracted, func(ctx context.Context, f *entity.Filing) Outcome {
		if f.ExternalID == "C1" {
			panic("nil dereference somewhere deep")
		}
		return Outcome{Status: constants.StatusSuccess}
	})

	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 1, res.Succeeded, "the batch continues past a panicking item")
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "C1")

	// The panicking filing was transitioned to failed with a generic error.
	require.Len(t, repo.transitions, 1)
	assert.Equal(t, constants.StatusFailed, repo.transitions[0].Status)
	assert.Contains(t, repo.transitions[0].ErrMsg, "unexpected error")
}

func TestRunStageSkippedCountsSeparately(t *testing.T) {
	repo := &fakeRepo{eligible: []*entity.Filing{filingWithID("C1")}}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageExtracted, func(ctx context.Context, f *entity.Filing) Outcome {
		return Outcome{Status: constants.StatusSuccess, Skipped: true}
	})

	assert.Equal(t, 1, res.Attempted)
	assert.Equal(t, 0, res.Succeeded)
	assert.Equal(t, 1, res.Skipped)

	// Vacuous success still commits, so the filing is not retried forever.
	require.Len(t, repo.commits, 1)
	assert.Equal(t, constants.StatusSuccess, repo.commits[0].Status)
}

func TestRunStageEligibilityQueryFailure(t *testing.T) {
	repo := &fakeRepo{eligibleErr: errors.New("connection refused")}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageDownloaded, func(ctx context.Context, f *entity.Filing) Outcome {
		t.Fatal("operation must not run")
		return Outcome{}
	})

	assert.Equal(t, 0, res.Attempted)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "eligibility query")
}

func TestRunStageCommitFailure(t *testing.T) {
	repo := &fakeRepo{
		eligible:  []*entity.Filing{filingWithID("C1")},
		commitErr: errors.New("disk full"),
	}
	orch := NewOrchestrator(repo, 3, nil)

	res := orch.RunStage(context.Background(), constants.StageDownloaded, func(ctx context.Context, f *entity.Filing) Outcome {
		return Outcome{Status: constants.StatusSuccess}
	})

	assert.Equal(t, 0, res.Succeeded)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "commit")
}
