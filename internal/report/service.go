package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mt2web/mt2web/internal/domain"
	"github.com/mt2web/mt2web/internal/event"
	"github.com/mt2web/mt2web/internal/logger"
	"github.com/mt2web/mt2web/internal/repository"
)

// CreateRequest is a report written by a user action rather than by the work lifecycle
type CreateRequest struct {
	Type    domain.ReportType
	Subject string
	Content string
}

// ListOptions narrows a listing
type ListOptions struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// Service defines the report history operations exposed to the API layer
type Service interface {
	Create(ctx context.Context, characterID uuid.UUID, req CreateRequest) (*domain.Report, error)
	List(ctx context.Context, characterID uuid.UUID, opts ListOptions) ([]domain.Report, error)
	Get(ctx context.Context, characterID, reportID uuid.UUID) (*domain.Report, error)
	MarkRead(ctx context.Context, characterID, reportID uuid.UUID) error
	MarkAllRead(ctx context.Context, characterID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, characterID uuid.UUID) (int, error)
	Delete(ctx context.Context, characterID, reportID uuid.UUID) error
}

type service struct {
	repo      repository.Report
	publisher event.Publisher
}

// NewService creates a new report service
func NewService(repo repository.Report, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.Nop{}
	}
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Create(ctx context.Context, characterID uuid.UUID, req CreateRequest) (*domain.Report, error) {
	if _, err := domain.ParseReportType(string(req.Type)); err != nil {
		return nil, fmt.Errorf("%w: report type %q", domain.ErrInvalidInput, req.Type)
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" || len(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject must be 1-%d characters", domain.ErrInvalidInput, MaxSubjectLength)
	}
	if len(req.Content) > MaxContentLength {
		return nil, fmt.Errorf("%w: content exceeds %d characters", domain.ErrInvalidInput, MaxContentLength)
	}

	r := newReport(characterID, req.Type, subject, req.Content, nil)
	if err := s.repo.CreateReport(ctx, &r); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	if err := s.publisher.Publish(ctx, event.NewReportCreatedEvent(&r)); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish report event", "report_id", r.ID, "error", err)
	}
	return &r, nil
}

func (s *service) List(ctx context.Context, characterID uuid.UUID, opts ListOptions) ([]domain.Report, error) {
	filter := repository.ReportFilter{
		UnreadOnly: opts.UnreadOnly,
		Limit:      opts.Limit,
		Offset:     opts.Offset,
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListReports(ctx, characterID, filter)
}

// Get returns the report only if it belongs to the character
func (s *service) Get(ctx context.Context, characterID, reportID uuid.UUID) (*domain.Report, error) {
	r, err := s.repo.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if r.CharacterID != characterID {
		return nil, domain.ErrReportNotFound
	}
	return r, nil
}

func (s *service) MarkRead(ctx context.Context, characterID, reportID uuid.UUID) error {
	r, err := s.Get(ctx, characterID, reportID)
	if err != nil {
		return err
	}
	if r.Read {
		return nil
	}
	return s.repo.MarkRead(ctx, reportID)
}

func (s *service) MarkAllRead(ctx context.Context, characterID uuid.UUID) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, characterID)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Debug("Marked reports read", "count", n)
	return n, nil
}

func (s *service) UnreadCount(ctx context.Context, characterID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, characterID)
}

func (s *service) Delete(ctx context.Context, characterID, reportID uuid.UUID) error {
	if _, err := s.Get(ctx, characterID, reportID); err != nil {
		return err
	}
	return s.repo.DeleteReport(ctx, reportID)
}
