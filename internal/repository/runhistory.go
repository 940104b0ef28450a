package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/filingwatch/regdocs-monitor/gen/ent"
	"github.com/filingwatch/regdocs-monitor/gen/ent/runhistory"
	"github.com/filingwatch/regdocs-monitor/internal/entity"
)

// RunStats carries per-run totals recorded at completion.
type RunStats struct {
	TotalFilingsFound int
	NewFilings        int
	ProcessedOK       int
	ProcessedFailed   int
}

// RunHistoryRepository records pipeline run audit rows.
type RunHistoryRepository interface {
	Start(ctx context.Context) (*entity.RunHistory, error)
	Finish(ctx context.Context, id uuid.UUID, stats RunStats) error
	Latest(ctx context.Context) (*entity.RunHistory, error)
}

type runHistoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRunHistoryRepository(client *ent.Client, logger *slog.Logger) RunHistoryRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &runHistoryRepository{client: client, logger: logger}
}

func (r *runHistoryRepository) Start(ctx context.Context) (*entity.RunHistory, error) {
	row, err := r.client.RunHistory.Create().Save(ctx)
	if err != nil {
		r.logger.Error("failed to record run start", "error", err)
		return nil, err
	}
	return ToRunHistory(row), nil
}

func (r *runHistoryRepository) Finish(ctx context.Context, id uuid.UUID, stats RunStats) error {
	row, err := r.client.RunHistory.Get(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now()
	_, err = r.client.RunHistory.UpdateOneID(id).
		SetCompletedAt(now).
		SetTotalFilingsFound(stats.TotalFilingsFound).
		SetNewFilings(stats.NewFilings).
		SetProcessedOk(stats.ProcessedOK).
		SetProcessedFailed(stats.ProcessedFailed).
		SetDurationSeconds(now.Sub(row.StartedAt).Seconds()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record run completion", "run_id", id, "error", err)
	}
	return err
}

func (r *runHistoryRepository) Latest(ctx context.Context) (*entity.RunHistory, error) {
	row, err := r.client.RunHistory.Query().
		Order(ent.Desc(runhistory.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return ToRunHistory(row), nil
}
