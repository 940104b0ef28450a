package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/gen/ent/enttest"
	"github.com/filingwatch/regdocs-monitor/internal/common"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

var testDBSeq atomic.Int64

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// openTestRepos opens a fresh in-memory state database per test.
func openTestRepos(t *testing.T) (FilingRepository, RunHistoryRepository) {
	t.Helper()
	name := fmt.Sprintf("repo_test_%s_%d",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()), testDBSeq.Add(1))
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	t.Cleanup(func() { _ = client.Close() })
	return NewFilingRepository(client, testLogger()), NewRunHistoryRepository(client, testLogger())
}

func createFiling(t *testing.T, repo FilingRepository, id string, docURLs ...string) *entity.Filing {
	t.Helper()
	req := &CreateFilingRequest{ExternalID: id, Applicant: "TransNorth Energy Ltd."}
	for i, u := range docURLs {
		req.Documents = append(req.Documents, CandidateDocument{
			URL:      u,
			Filename: fmt.Sprintf("doc_%d.pdf", i+1),
		})
	}
	f, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	return f
}

func TestCreateFiling(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()

	f := createFiling(t, repo, "C1", "https://example.org/a.pdf", "https://example.org/b.pdf")

	assert.Equal(t, constants.StatusSuccess, f.StatusScraped)
	assert.Equal(t, constants.StatusPending, f.StatusDownloaded)
	require.Len(t, f.Documents, 2)
	assert.Equal(t, 0, f.Documents[0].Seq)
	assert.Equal(t, 1, f.Documents[1].Seq)
	assert.Equal(t, "https://example.org/a.pdf", f.Documents[0].DocumentURL)

	exists, err := repo.Exists(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateDuplicateExternalID(t *testing.T) {
	repo, _ := openTestRepos(t)
	createFiling(t, repo, "C1")

	_, err := repo.Create(context.Background(), &CreateFilingRequest{ExternalID: "C1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestTransitionRequiresPredecessorSuccess(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()
	createFiling(t, repo, "C1")

	// Extraction cannot succeed before download has.
	err := repo.Transition(ctx, "C1", constants.StageExtracted, constants.StatusSuccess, "")
	assert.ErrorIs(t, err, common.ErrPrerequisite)

	require.NoError(t, repo.Transition(ctx, "C1", constants.StageDownloaded, constants.StatusSuccess, ""))
	require.NoError(t, repo.Transition(ctx, "C1", constants.StageExtracted, constants.StatusSuccess, ""))

	f, err := repo.GetByExternalID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSuccess, f.StatusExtracted)
}

func TestTransitionFailureAccounting(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()
	createFiling(t, repo, "C1")

	require.NoError(t, repo.Transition(ctx, "C1", constants.StageDownloaded, constants.StatusFailed, "connection reset"))
	require.NoError(t, repo.Transition(ctx, "C1", constants.StageDownloaded, constants.StatusFailed, "connection reset again"))

	f, err := repo.GetByExternalID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.RetryCount, "every recorded failure increments retry_count")
	assert.Equal(t, "connection reset again", f.ErrorMessage)

	// A later success leaves the count where it was.
	require.NoError(t, repo.Transition(ctx, "C1", constants.StageDownloaded, constants.StatusSuccess, ""))
	f, err = repo.GetByExternalID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.RetryCount)
}

func TestTransitionUnknownFiling(t *testing.T) {
	repo, _ := openTestRepos(t)
	err := repo.Transition(context.Background(), "missing", constants.StageDownloaded, constants.StatusFailed, "x")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestEligibleForStage(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()

	createFiling(t, repo, "fresh", "https://example.org/a.pdf")

	createFiling(t, repo, "done")
	require.NoError(t, repo.Transition(ctx, "done", constants.StageDownloaded, constants.StatusSuccess, ""))

	createFiling(t, repo, "exhausted")
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Transition(ctx, "exhausted", constants.StageDownloaded, constants.StatusFailed, "still failing"))
	}

	eligible, err := repo.EligibleForStage(ctx, constants.StageDownloaded, 3)
	require.NoError(t, err)
	require.Len(t, eligible, 1, "only the fresh filing is under the retry ceiling with download pending")
	assert.Equal(t, "fresh", eligible[0].ExternalID)
	require.Len(t, eligible[0].Documents, 1, "documents come eagerly loaded")

	eligible, err = repo.EligibleForStage(ctx, constants.StageExtracted, 3)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "done", eligible[0].ExternalID)

	_, err = repo.EligibleForStage(ctx, constants.StageScraped, 3)
	assert.ErrorIs(t, err, common.ErrInvalidStage, "scraped has no predecessor to gate on")
}

func TestCommitStageResultPersistsDocuments(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()
	f := createFiling(t, repo, "C1", "https://example.org/a.pdf")

	f.Documents[0].DownloadStatus = constants.StatusSuccess
	f.Documents[0].LocalPath = "/data/filings/x/documents/doc_001.pdf"
	f.Documents[0].FileSizeBytes = 4096
	f.Documents[0].ContentType = "application/pdf"
	require.NoError(t, repo.CommitStageResult(ctx, f, constants.StageDownloaded, constants.StatusSuccess, ""))
	assert.Equal(t, constants.StatusSuccess, f.StatusDownloaded, "the in-memory filing tracks the commit")

	f.Documents[0].ExtractionStatus = constants.StatusSuccess
	f.Documents[0].ExtractionMethod = constants.MethodLayout
	f.Documents[0].ExtractedText = "recovered text"
	f.Documents[0].CharCount = 14
	f.Documents[0].PageCount = 3
	require.NoError(t, repo.CommitStageResult(ctx, f, constants.StageExtracted, constants.StatusSuccess, ""))

	f.AnalysisJSON = json.RawMessage(`{"summary":"ok"}`)
	require.NoError(t, repo.CommitStageResult(ctx, f, constants.StageAnalyzed, constants.StatusSuccess, ""))

	got, err := repo.GetByExternalID(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, constants.StatusSuccess, got.StatusAnalyzed)
	assert.JSONEq(t, `{"summary":"ok"}`, string(got.AnalysisJSON))
	require.Len(t, got.Documents, 1)
	doc := got.Documents[0]
	assert.Equal(t, "/data/filings/x/documents/doc_001.pdf", doc.LocalPath)
	assert.Equal(t, int64(4096), doc.FileSizeBytes)
	assert.Equal(t, constants.MethodLayout, doc.ExtractionMethod)
	assert.Equal(t, "recovered text", doc.ExtractedText)
	assert.Equal(t, 3, doc.PageCount)
}

func TestCountUnprocessedAndAnalyzed(t *testing.T) {
	repo, _ := openTestRepos(t)
	ctx := context.Background()

	createFiling(t, repo, "C1")
	createFiling(t, repo, "C2")

	n, err := repo.CountUnprocessed(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, stage := range []constants.Stage{
		constants.StageDownloaded, constants.StageExtracted,
		constants.StageAnalyzed, constants.StageNotified,
	} {
		require.NoError(t, repo.Transition(ctx, "C1", stage, constants.StatusSuccess, ""))
	}

	n, err = repo.CountUnprocessed(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	analyzed, err := repo.AnalyzedFilings(ctx)
	require.NoError(t, err)
	require.Len(t, analyzed, 1)
	assert.Equal(t, "C1", analyzed[0].ExternalID)
}

func TestRunHistoryRoundTrip(t *testing.T) {
	_, runs := openTestRepos(t)
	ctx := context.Background()

	run, err := runs.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)

	require.NoError(t, runs.Finish(ctx, run.ID, RunStats{
		TotalFilingsFound: 12,
		NewFilings:        4,
		ProcessedOK:       3,
		ProcessedFailed:   1,
	}))

	last, err := runs.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, run.ID, last.ID)
	assert.Equal(t, 12, last.TotalFilingsFound)
	assert.Equal(t, 4, last.NewFilings)
	assert.Equal(t, 3, last.ProcessedOK)
	assert.Equal(t, 1, last.ProcessedFailed)
	require.NotNil(t, last.CompletedAt)
	assert.GreaterOrEqual(t, last.DurationSeconds, 0.0)
	assert.False(t, last.CompletedAt.Before(last.StartedAt), "completion cannot precede start")
}
