package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
	"github.com/filingwatch/regdocs-monitor/internal/repository"
)

// analyzedOnlyRepo serves AnalyzedFilings; the rest of the interface is
// unused by export.
type analyzedOnlyRepo struct {
	filings []*entity.Filing
	err     error
}

func (r *analyzedOnlyRepo) Create(ctx context.Context, req *repository.CreateFilingRequest) (*entity.Filing, error) {
	return nil, errors.New("not implemented")
}

func (r *analyzedOnlyRepo) Exists(ctx context.Context, externalID string) (bool, error) {
	return false, nil
}

func (r *analyzedOnlyRepo) GetByExternalID(ctx context.Context, externalID string) (*entity.Filing, error) {
	return nil, errors.New("not implemented")
}

func (r *analyzedOnlyRepo) EligibleForStage(ctx context.Context, stage constants.Stage, maxRetries int) ([]*entity.Filing, error) {
	return nil, nil
}

func (r *analyzedOnlyRepo) Transition(ctx context.Context, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	return nil
}

func (r *analyzedOnlyRepo) CommitStageResult(ctx context.Context, f *entity.Filing, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	return nil
}

func (r *analyzedOnlyRepo) CountUnprocessed(ctx context.Context, maxRetries int) (int, error) {
	return 0, nil
}

func (r *analyzedOnlyRepo) AnalyzedFilings(ctx context.Context) ([]*entity.Filing, error) {
	return r.filings, r.err
}

func testService(repo repository.FilingRepository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func analyzedFiling(t *testing.T, id string) *entity.Filing {
	t.Helper()
	analysis, err := json.Marshal(map[string]any{
		"summary": "Application to operate a compressor station.",
		"classification": map[string]any{
			"primary_type": "Application",
			"tags":         []string{"compressor", "operations"},
			"confidence":   91,
		},
		"key_facts": []string{"Operating term ends 2027-12-31", "Two affected landowners"},
	})
	require.NoError(t, err)
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	return &entity.Filing{
		ExternalID:       id,
		Date:             &date,
		Applicant:        "TransNorth Energy Ltd.",
		FilingType:       "Application",
		ProceedingNumber: "P-2026-004",
		StatusAnalyzed:   constants.StatusSuccess,
		AnalysisJSON:     analysis,
		Documents:        []*entity.Document{{Seq: 0}, {Seq: 1}},
	}
}

func TestExportAnalyzedXLSX(t *testing.T) {
	repo := &analyzedOnlyRepo{filings: []*entity.Filing{analyzedFiling(t, "C4312")}}

	data, err := testService(repo).ExportAnalyzedXLSX(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Filings")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one filing")

	assert.Equal(t, "Filing ID", rows[0][0])
	assert.Equal(t, "C4312", rows[1][0])
	assert.Equal(t, "2026-02-09", rows[1][1])
	assert.Equal(t, "TransNorth Energy Ltd.", rows[1][2])
	assert.Equal(t, "2", rows[1][5])
	assert.Equal(t, "Application", rows[1][6])
	assert.Equal(t, "91", rows[1][7])
	assert.Contains(t, rows[1][8], "compressor")
	assert.Contains(t, rows[1][10], "2027-12-31")
}

func TestExportEmptyStore(t *testing.T) {
	data, err := testService(&analyzedOnlyRepo{}).ExportAnalyzedXLSX(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Filings")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}

func TestExportMalformedAnalysisTolerated(t *testing.T) {
	f := analyzedFiling(t, "C9")
	f.AnalysisJSON = json.RawMessage("{broken")
	repo := &analyzedOnlyRepo{filings: []*entity.Filing{f}}

	data, err := testService(repo).ExportAnalyzedXLSX(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	out := truncate("a much longer sentence than the limit", 10)
	assert.Len(t, []byte(out), 9+len("…"))
	assert.True(t, len(out) <= 10+len("…"))
}
