package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/repository"
)

// ReportRepository implements repository.Report for PostgreSQL
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReport inserts a report
func (r *ReportRepository) CreateReport(ctx context.Context, report *domain.Report) error {
	return insertReport(ctx, r.db, report)
}

// GetReport retrieves a report by ID
func (r *ReportRepository) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	report, err := scanReport(r.db.QueryRow(ctx, SQLSelectReportByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// ListReports returns the character's reports, newest first
func (r *ReportRepository) ListReports(ctx context.Context, characterID uuid.UUID, filter repository.ReportFilter) ([]domain.Report, error) {
	rows, err := r.db.Query(ctx, SQLListReports, characterID, filter.UnreadOnly, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return reports, nil
}

// MarkRead flags a single report as read
func (r *ReportRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, SQLMarkReportRead, id)
	if err != nil {
		return fmt.Errorf("failed to mark report read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// MarkAllRead flags every unread report of the character and returns how many changed
func (r *ReportRepository) MarkAllRead(ctx context.Context, characterID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, SQLMarkAllReportsRead, characterID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark reports read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountUnread returns the number of unread reports of the character
func (r *ReportRepository) CountUnread(ctx context.Context, characterID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, SQLCountUnreadReports, characterID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread reports: %w", err)
	}
	return count, nil
}

// DeleteReport removes a report
func (r *ReportRepository) DeleteReport(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, SQLDeleteReport, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

var _ repository.Report = (*ReportRepository)(nil)
