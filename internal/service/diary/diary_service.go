package diary

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

// DashboardInvalidator drops a user's cached trend dashboards after a write
// so aggregates never lag behind the data they summarize.
type DashboardInvalidator interface {
	InvalidateDashboards(ctx context.Context, userID string) error
}

type DiaryService interface {
	Create(ctx context.Context, userID uuid.UUID, req request.CreateDiary) (*entity.Diary, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Diary, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Diary, *entity.PaginationInfo, error)
	Update(ctx context.Context, id, userID uuid.UUID, req request.UpdateDiary) (*entity.Diary, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type diaryService struct {
	repo        repository.DiaryRepository
	invalidator DashboardInvalidator
}

func NewDiaryService(repo repository.DiaryRepository, invalidator DashboardInvalidator) DiaryService {
	return &diaryService{repo: repo, invalidator: invalidator}
}

func (s *diaryService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.invalidator != nil {
		_ = s.invalidator.InvalidateDashboards(ctx, userID.String())
	}
}

func (s *diaryService) Create(ctx context.Context, userID uuid.UUID, req request.CreateDiary) (*entity.Diary, error) {
	date, entryTime, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	diary := &entity.Diary{
		UserID:        userID,
		Date:          date,
		Time:          entryTime,
		Title:         req.Title,
		Detail:        req.Detail,
		MoodScore:     req.MoodScore,
		MoodTags:      req.MoodTags,
		PositiveScore: req.PositiveScore,
		NegativeScore: req.NegativeScore,
		Tags:          req.Tags,
	}

	if err := s.repo.Create(ctx, diary); err != nil {
		return nil, fmt.Errorf("failed to create diary: %w", err)
	}

	s.invalidate(ctx, userID)
	return diary, nil
}

func (s *diaryService) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.Diary, error) {
	return s.repo.GetByID(ctx, id, userID)
}

func (s *diaryService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Diary, *entity.PaginationInfo, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	diaries, total, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	pagination := &entity.PaginationInfo{
		Page:       offset/limit + 1,
		PerPage:    limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return diaries, pagination, nil
}

func (s *diaryService) Update(ctx context.Context, id, userID uuid.UUID, req request.UpdateDiary) (*entity.Diary, error) {
	date, entryTime, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	diary := &entity.Diary{
		ID:            id,
		UserID:        userID,
		Date:          date,
		Time:          entryTime,
		Title:         req.Title,
		Detail:        req.Detail,
		MoodScore:     req.MoodScore,
		MoodTags:      req.MoodTags,
		PositiveScore: req.PositiveScore,
		NegativeScore: req.NegativeScore,
		Tags:          req.Tags,
	}

	if err := s.repo.Update(ctx, diary); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return diary, nil
}

func (s *diaryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func parseDateTime(dateStr, timeStr string) (time.Time, string, error) {
	date, err := utils.ParseBangkok(utils.DateLayout, dateStr)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid date, use YYYY-MM-DD: %w", err)
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, timeStr); err == nil {
			return date, parsed.Format("15:04:05"), nil
		}
	}
	return time.Time{}, "", fmt.Errorf("invalid time %q, use HH:MM", timeStr)
}
