package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/filingwatch/regdocs-monitor/constants"
	"github.com/filingwatch/regdocs-monitor/gen/ent"
	"github.com/filingwatch/regdocs-monitor/gen/ent/document"
	"github.com/filingwatch/regdocs-monitor/gen/ent/filing"
	"github.com/filingwatch/regdocs-monitor/gen/ent/predicate"
	"github.com/filingwatch/regdocs-monitor/internal/common"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// CandidateDocument is one downloadable artifact reported by discovery.
type CandidateDocument struct {
	URL      string
	Filename string
}

// CreateFilingRequest wraps parameters for creating a filing.
type CreateFilingRequest struct {
	ExternalID       string
	Date             *time.Time
	Applicant        string
	FilingType       string
	ProceedingNumber string
	Title            string
	URL              string
	Documents        []CandidateDocument
}

// FilingRepository is the filing store: eligibility queries, stage
// transitions, and atomic per-filing commits.
type FilingRepository interface {
	// Create inserts a filing with status_scraped=success and all later
	// stages pending. Returns common.ErrDuplicate if the external id exists.
	Create(ctx context.Context, req *CreateFilingRequest) (*entity.Filing, error)
	// Exists reports whether a filing with the external id is already stored.
	Exists(ctx context.Context, externalID string) (bool, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.Filing, error)
	// EligibleForStage returns filings whose predecessor stage succeeded,
	// whose own stage has not, and whose retry_count is under maxRetries.
	// Documents are loaded in stored order.
	EligibleForStage(ctx context.Context, stage constants.Stage, maxRetries int) ([]*entity.Filing, error)
	// Transition sets one stage's status. A non-empty errMsg also records
	// error_message and increments retry_count.
	Transition(ctx context.Context, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error
	// CommitStageResult persists the filing's mutated document fields, its
	// analysis JSON (when set), and the stage transition in one transaction.
	CommitStageResult(ctx context.Context, f *entity.Filing, stage constants.Stage, status constants.StepStatus, errMsg string) error
	// CountUnprocessed counts filings still short of the full pipeline and
	// under the retry ceiling.
	CountUnprocessed(ctx context.Context, maxRetries int) (int, error)
	// AnalyzedFilings returns filings whose analysis stage succeeded.
	AnalyzedFilings(ctx context.Context) ([]*entity.Filing, error)
}

type filingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFilingRepository(client *ent.Client, logger *slog.Logger) FilingRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &filingRepository{client: client, logger: logger}
}

func (r *filingRepository) Create(ctx context.Context, req *CreateFilingRequest) (*entity.Filing, error) {
	var created *ent.Filing
	err := WithTx(ctx, r.client, func(tx *ent.Tx) error {
		builder := tx.Filing.Create().
			SetExternalID(req.ExternalID).
			SetStatusScraped(string(constants.StatusSuccess))
		if req.Date != nil {
			builder = builder.SetDate(*req.Date)
		}
		if req.Applicant != "" {
			builder = builder.SetApplicant(req.Applicant)
		}
		if req.FilingType != "" {
			builder = builder.SetFilingType(req.FilingType)
		}
		if req.ProceedingNumber != "" {
			builder = builder.SetProceedingNumber(req.ProceedingNumber)
		}
		if req.Title != "" {
			builder = builder.SetTitle(req.Title)
		}
		if req.URL != "" {
			builder = builder.SetURL(req.URL)
		}

		row, err := builder.Save(ctx)
		if err != nil {
			return err
		}

		for i, d := range req.Documents {
			db := tx.Document.Create().
				SetFilingID(row.ID).
				SetSeq(i).
				SetDocumentURL(d.URL)
			if d.Filename != "" {
				db = db.SetFilename(d.Filename)
			}
			if _, err := db.Save(ctx); err != nil {
				return err
			}
		}

		created, err = tx.Filing.Query().
			Where(filing.ID(row.ID)).
			WithDocuments(func(q *ent.DocumentQuery) {
				q.Order(ent.Asc(document.FieldSeq))
			}).
			Only(ctx)
		return err
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			r.logger.Warn("filing already exists", "external_id", req.ExternalID)
			return nil, common.NewAppError("DUPLICATE_FILING", req.ExternalID, common.ErrDuplicate)
		}
		r.logger.Error("failed to create filing", "external_id", req.ExternalID, "error", err)
		return nil, err
	}
	r.logger.Info("created filing", "external_id", req.ExternalID, "documents", len(req.Documents))
	return ToFiling(created), nil
}

func (r *filingRepository) Exists(ctx context.Context, externalID string) (bool, error) {
	return r.client.Filing.Query().
		Where(filing.ExternalID(externalID)).
		Exist(ctx)
}

func (r *filingRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.Filing, error) {
	row, err := r.client.Filing.Query().
		Where(filing.ExternalID(externalID)).
		WithDocuments(func(q *ent.DocumentQuery) {
			q.Order(ent.Asc(document.FieldSeq))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("FILING_NOT_FOUND", externalID, common.ErrNotFound)
		}
		return nil, err
	}
	return ToFiling(row), nil
}

func (r *filingRepository) EligibleForStage(ctx context.Context, stage constants.Stage, maxRetries int) ([]*entity.Filing, error) {
	preds, err := eligibilityPredicates(stage, maxRetries)
	if err != nil {
		return nil, err
	}

	rows, err := r.client.Filing.Query().
		Where(preds...).
		WithDocuments(func(q *ent.DocumentQuery) {
			q.Order(ent.Asc(document.FieldSeq))
		}).
		Order(ent.Asc(filing.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("eligibility query failed", "stage", stage, "error", err)
		return nil, err
	}

	out := make([]*entity.Filing, len(rows))
	for i, row := range rows {
		out[i] = ToFiling(row)
	}
	return out, nil
}

func (r *filingRepository) Transition(ctx context.Context, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	return WithTx(ctx, r.client, func(tx *ent.Tx) error {
		return transitionTx(ctx, tx, externalID, stage, status, errMsg)
	})
}

func (r *filingRepository) CommitStageResult(ctx context.Context, f *entity.Filing, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	err := WithTx(ctx, r.client, func(tx *ent.Tx) error {
		for _, d := range f.Documents {
			upd := tx.Document.UpdateOneID(d.ID).
				SetDownloadStatus(string(d.DownloadStatus)).
				SetExtractionStatus(string(d.ExtractionStatus)).
				SetFileSizeBytes(d.FileSizeBytes).
				SetCharCount(d.CharCount).
				SetPageCount(d.PageCount)
			if d.Filename != "" {
				upd = upd.SetFilename(d.Filename)
			}
			if d.LocalPath != "" {
				upd = upd.SetLocalPath(d.LocalPath)
			} else {
				upd = upd.ClearLocalPath()
			}
			if d.ContentType != "" {
				upd = upd.SetContentType(d.ContentType)
			}
			if d.ExtractionMethod != "" {
				upd = upd.SetExtractionMethod(string(d.ExtractionMethod))
			}
			if d.ExtractedText != "" {
				upd = upd.SetExtractedText(d.ExtractedText)
			}
			if d.ExtractionError != "" {
				upd = upd.SetExtractionError(d.ExtractionError)
			} else {
				upd = upd.ClearExtractionError()
			}
			if _, err := upd.Save(ctx); err != nil {
				return err
			}
		}

		if len(f.AnalysisJSON) > 0 {
			if _, err := tx.Filing.UpdateOneID(f.ID).
				SetAnalysisJSON(f.AnalysisJSON).
				Save(ctx); err != nil {
				return err
			}
		}

		return transitionTx(ctx, tx, f.ExternalID, stage, status, errMsg)
	})
	if err != nil {
		r.logger.Error("failed to commit stage result",
			"external_id", f.ExternalID, "stage", stage, "status", status, "error", err)
		return err
	}
	f.SetStageStatus(stage, status)
	return nil
}

func (r *filingRepository) CountUnprocessed(ctx context.Context, maxRetries int) (int, error) {
	return r.client.Filing.Query().
		Where(
			filing.StatusNotifiedNEQ(string(constants.StatusSuccess)),
			filing.RetryCountLT(maxRetries),
		).
		Count(ctx)
}

func (r *filingRepository) AnalyzedFilings(ctx context.Context) ([]*entity.Filing, error) {
	rows, err := r.client.Filing.Query().
		Where(filing.StatusAnalyzed(string(constants.StatusSuccess))).
		WithDocuments(func(q *ent.DocumentQuery) {
			q.Order(ent.Asc(document.FieldSeq))
		}).
		Order(ent.Asc(filing.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Filing, len(rows))
	for i, row := range rows {
		out[i] = ToFiling(row)
	}
	return out, nil
}

// transitionTx applies one stage transition inside a caller-owned
// transaction, enforcing the stage-order invariant and retry bookkeeping.
func transitionTx(ctx context.Context, tx *ent.Tx, externalID string, stage constants.Stage, status constants.StepStatus, errMsg string) error {
	if !stage.Valid() {
		return common.NewAppError("INVALID_STAGE", string(stage), common.ErrInvalidStage)
	}

	row, err := tx.Filing.Query().
		Where(filing.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("FILING_NOT_FOUND", externalID, common.ErrNotFound)
		}
		return err
	}

	// A stage may only reach success once its predecessor has.
	if status == constants.StatusSuccess {
		if pred, ok := stage.Predecessor(); ok {
			if stageColumn(row, pred) != string(constants.StatusSuccess) {
				return common.NewAppError("STAGE_ORDER", string(stage), common.ErrPrerequisite)
			}
		}
	}

	upd := tx.Filing.UpdateOneID(row.ID)
	upd, err = setStageColumn(upd, stage, status)
	if err != nil {
		return err
	}
	if errMsg != "" {
		upd = upd.SetErrorMessage(errMsg).AddRetryCount(1)
	}
	_, err = upd.Save(ctx)
	return err
}

// setStageColumn is the explicit five-case transition keyed on the closed
// stage enumeration.
func setStageColumn(upd *ent.FilingUpdateOne, stage constants.Stage, status constants.StepStatus) (*ent.FilingUpdateOne, error) {
	v := string(status)
	switch stage {
	case constants.StageScraped:
		return upd.SetStatusScraped(v), nil
	case constants.StageDownloaded:
		return upd.SetStatusDownloaded(v), nil
	case constants.StageExtracted:
		return upd.SetStatusExtracted(v), nil
	case constants.StageAnalyzed:
		return upd.SetStatusAnalyzed(v), nil
	case constants.StageNotified:
		return upd.SetStatusNotified(v), nil
	}
	return nil, common.NewAppError("INVALID_STAGE", string(stage), common.ErrInvalidStage)
}

func stageColumn(row *ent.Filing, stage constants.Stage) string {
	switch stage {
	case constants.StageScraped:
		return row.StatusScraped
	case constants.StageDownloaded:
		return row.StatusDownloaded
	case constants.StageExtracted:
		return row.StatusExtracted
	case constants.StageAnalyzed:
		return row.StatusAnalyzed
	case constants.StageNotified:
		return row.StatusNotified
	}
	return ""
}

func eligibilityPredicates(stage constants.Stage, maxRetries int) ([]predicate.Filing, error) {
	success := string(constants.StatusSuccess)
	var predDone, stageNEQ predicate.Filing
	switch stage {
	case constants.StageDownloaded:
		predDone = filing.StatusScraped(success)
		stageNEQ = filing.StatusDownloadedNEQ(success)
	case constants.StageExtracted:
		predDone = filing.StatusDownloaded(success)
		stageNEQ = filing.StatusExtractedNEQ(success)
	case constants.StageAnalyzed:
		predDone = filing.StatusExtracted(success)
		stageNEQ = filing.StatusAnalyzedNEQ(success)
	case constants.StageNotified:
		predDone = filing.StatusAnalyzed(success)
		stageNEQ = filing.StatusNotifiedNEQ(success)
	default:
		return nil, common.NewAppError("INVALID_STAGE", string(stage), common.ErrInvalidStage)
	}
	return []predicate.Filing{
		predDone,
		stageNEQ,
		filing.RetryCountLT(maxRetries),
	}, nil
}
