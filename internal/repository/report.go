package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
)

// ReportFilter narrows a report listing
type ReportFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Report defines the interface for report data access
type Report interface {
	CreateReport(ctx context.Context, r *domain.Report) error
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	// ListReports returns the character's reports, newest first
	ListReports(ctx context.Context, characterID uuid.UUID, filter ReportFilter) ([]domain.Report, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, characterID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, characterID uuid.UUID) (int, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
}
