package repository

import (
	"context"

	"roadwatch/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, id string) (*entity.Report, error)
	// ListByReporter returns the reporter's own reports, newest first.
	ListByReporter(ctx context.Context, reporterID string) ([]*entity.Report, error)
	// ListAll returns every report, newest first.
	ListAll(ctx context.Context) ([]*entity.Report, error)
	// UpdateStatus applies the patch and refreshes updatedAt. Concurrent
	// updates to the same id are last-writer-wins.
	UpdateStatus(ctx context.Context, id string, patch entity.StatusPatch) (*entity.Report, error)
}
