package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/internal/model/request"
	"github.com/lifelog-app/lifelog-backend/internal/repository"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

// DashboardInvalidator drops a user's cached trend dashboards after a write.
type DashboardInvalidator interface {
	InvalidateDashboards(ctx context.Context, userID string) error
}

type ActivityService interface {
	Create(ctx context.Context, userID uuid.UUID, req request.CreateActivity) (*entity.Activity, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Activity, *entity.PaginationInfo, error)
	Update(ctx context.Context, id, userID uuid.UUID, req request.UpdateActivity) (*entity.Activity, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type activityService struct {
	repo        repository.ActivityRepository
	invalidator DashboardInvalidator
}

func NewActivityService(repo repository.ActivityRepository, invalidator DashboardInvalidator) ActivityService {
	return &activityService{repo: repo, invalidator: invalidator}
}

func (s *activityService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.invalidator != nil {
		_ = s.invalidator.InvalidateDashboards(ctx, userID.String())
	}
}

func (s *activityService) Create(ctx context.Context, userID uuid.UUID, req request.CreateActivity) (*entity.Activity, error) {
	activity, err := activityFromRequest(req.Date, req.AllDay, req.Time, req.Title, req.Category, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}
	activity.UserID = userID

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.invalidate(ctx, userID)
	return activity, nil
}

func (s *activityService) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Activity, error) {
	return s.repo.GetByID(ctx, id, userID)
}

func (s *activityService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Activity, *entity.PaginationInfo, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	activities, total, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	pagination := &entity.PaginationInfo{
		Page:       offset/limit + 1,
		PerPage:    limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return activities, pagination, nil
}

func (s *activityService) Update(ctx context.Context, id, userID uuid.UUID, req request.UpdateActivity) (*entity.Activity, error) {
	activity, err := activityFromRequest(req.Date, req.AllDay, req.Time, req.Title, req.Category, req.Status, req.Notes)
	if err != nil {
		return nil, err
	}
	activity.ID = id
	activity.UserID = userID

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return activity, nil
}

func (s *activityService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func activityFromRequest(dateStr string, allDay bool, timeStr *string, title string, category *string, status string, notes *string) (*entity.Activity, error) {
	date, err := utils.ParseBangkok(utils.DateLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date, use YYYY-MM-DD: %w", err)
	}

	activity := &entity.Activity{
		Date:     date,
		AllDay:   allDay,
		Title:    title,
		Category: category,
		Status:   entity.NormalizeActivityStatus(status),
		Notes:    notes,
	}

	if !allDay {
		if timeStr == nil || *timeStr == "" {
			return nil, fmt.Errorf("time is required unless allDay is set")
		}
		var normalized string
		for _, layout := range []string{"15:04:05", "15:04"} {
			if parsed, err := time.Parse(layout, *timeStr); err == nil {
				normalized = parsed.Format("15:04:05")
				break
			}
		}
		if normalized == "" {
			return nil, fmt.Errorf("invalid time %q, use HH:MM", *timeStr)
		}
		activity.Time = &normalized
	}

	return activity, nil
}
