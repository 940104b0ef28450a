package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/common"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// fakeFilings implements repository.FilingRepository for ingest tests; only
// Create and Exists matter here.
type fakeFilings struct {
	existing  map[string]bool
	created   []*repository.CreateFilingRequest
	createErr error
}

func newFakeFilings(existing ...string) *fakeFilings {
	m := map[string]bool{}
	for _, id := range existing {
		m[id] = true
	}
	return &fakeFilings{existing: m}
}

func (r *fakeFilings) Create(ctx context.Context, req *repository.CreateFilingRequest) (*entity.Filing, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.existing[req.ExternalID] {
		return nil, common.ErrDuplicate
	}
	r.existing[req.ExternalID] = true
	r.created = append(r.created, req)
	return &entity.Filing{ExternalID: req.ExternalID}, nil
}

func (r *fakeFilings) Exists(ctx context.Context, externalID string) (bool, error) {
	return r.existing[externalID], nil
}

func (r *fakeFilings) GetByExternalID(ctx context.Context, externalID string) (*entity.Filing, error) {
	return nil, common.ErrNotFound
}

func (r *fakeFilings) EligibleForStage(ctx context.Context, stage constants.Stage, maxRetries int) ([]*entity.Filing, error) {
	return nil, nil
}

func (r *fakeFilings) Transition(ctx context.Context, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	return nil
}

func (r *fakeFilings) CommitStageResult(ctx context.Context, f *entity.Filing, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	return nil
}

func (r *fakeFilings) CountUnprocessed(ctx context.Context, maxRetries int) (int, error) {
	return 0, nil
}

func (r *fakeFilings) AnalyzedFilings(ctx context.Context) ([]*entity.Filing, error) {
	return nil, nil
}

func testService(repo repository.FilingRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestIngestCandidatesNewAndDeduplicated(t *testing.T) {
	repo := newFakeFilings("C1")
	svc := testService(repo)

	results, stats := svc.IngestCandidates(context.Background(), []Candidate{
		{ExternalID: "C1", Applicant: "Known Co."},
		{
			ExternalID: "C2",
			Date:       "2026-04-01",
			Applicant:  "New Co.",
			Documents: []CandidateDocument{
				{URL: "https://example.org/a.pdf", Filename: "a.pdf"},
				{URL: "https://example.org/b.pdf"},
			},
		},
	})

	assert.Equal(t, Stats{Found: 2, New: 1, Deduplicated: 1}, stats)
	require.Len(t, results, 2)
	assert.True(t, results[0].Deduplicated)
	assert.False(t, results[1].Deduplicated)

	require.Len(t, repo.created, 1)
	req := repo.created[0]
	assert.Equal(t, "C2", req.ExternalID)
	require.NotNil(t, req.Date)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), *req.Date)
	assert.Len(t, req.Documents, 2)
}

func TestIngestMissingExternalID(t *testing.T) {
	repo := newFakeFilings()
	svc := testService(repo)

	results, stats := svc.IngestCandidates(context.Background(), []Candidate{
		{ExternalID: "  "},
		{ExternalID: "C3"},
	})

	assert.Equal(t, Stats{Found: 2, New: 1, Failed: 1}, stats)
	assert.Equal(t, "missing external_id", results[0].Err)
	assert.Empty(t, results[1].Err, "a bad candidate does not stop the batch")
}

func TestIngestBadDateToleratedWithoutDate(t *testing.T) {
	repo := newFakeFilings()
	svc := testService(repo)

	_, stats := svc.IngestCandidates(context.Background(), []Candidate{
		{ExternalID: "C4", Date: "04/01/2026"},
	})

	assert.Equal(t, uint32(1), stats.New)
	require.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].Date, "unparseable date is dropped, not fatal")
}

func TestIngestSkipsEmptyDocumentURLs(t *testing.T) {
	repo := newFakeFilings()
	svc := testService(repo)

	svc.IngestCandidates(context.Background(), []Candidate{
		{ExternalID: "C5", Documents: []CandidateDocument{
			{URL: ""},
			{URL: "https://example.org/real.pdf"},
		}},
	})

	require.Len(t, repo.created, 1)
	require.Len(t, repo.created[0].Documents, 1)
	assert.Equal(t, "https://example.org/real.pdf", repo.created[0].Documents[0].URL)
}

func TestIngestCreateErrorCountsFailed(t *testing.T) {
	repo := newFakeFilings()
	repo.createErr = errors.New("database unavailable")
	svc := testService(repo)

	results, stats := svc.IngestCandidates(context.Background(), []Candidate{{ExternalID: "C6"}})

	assert.Equal(t, uint32(1), stats.Failed)
	assert.Contains(t, results[0].Err, "database unavailable")
}

func TestIngestFile(t *testing.T) {
	candidates := []Candidate{
		{ExternalID: "C7", Documents: []CandidateDocument{{URL: "https://example.org/c7.pdf"}}},
	}
	data, err := json.Marshal(candidates)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	repo := newFakeFilings()
	results, stats, err := testService(repo).IngestFile(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.New)
	require.Len(t, results, 1)
	assert.Equal(t, "C7", results[0].ExternalID)
}

func TestIngestFileMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not an array"), 0o644))

	_, _, err := testService(newFakeFilings()).IngestFile(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse candidates file")
}
