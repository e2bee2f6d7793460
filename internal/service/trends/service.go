package trends

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/pkg/utils"
)

// DiaryReader and ActivityReader are the two collaborator queries the engine
// consumes. A nil userID means no owner filter (community scope).
type DiaryReader interface {
	FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Diary, error)
}

type ActivityReader interface {
	FetchRange(ctx context.Context, userID *uuid.UUID, start, end time.Time) ([]entity.Activity, error)
}

// Cache is satisfied by the redis service. A nil Cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

const dashboardCacheTTL = 2 * time.Minute

// Service wires the analyzers to the record stores. Analyzers stay pure;
// every fetch happens here, once per input slice per request.
type Service struct {
	diaries    DiaryReader
	activities ActivityReader
	analyzer   *Analyzer
	cache      Cache
	now        func() time.Time
}

func NewService(diaries DiaryReader, activities ActivityReader, catalog Catalog, cache Cache) *Service {
	return &Service{
		diaries:    diaries,
		activities: activities,
		analyzer:   NewAnalyzer(catalog),
		cache:      cache,
		now:        utils.TodayBangkok,
	}
}

// WithNow pins the reference clock. Tests use it to make period resolution
// deterministic.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) resolve(kind PeriodKind, offset int) (Period, Period) {
	today := s.now()
	p := Resolve(kind, offset, today)
	return p, Previous(p, today)
}

func (s *Service) MoodTrend(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.MoodTrendReport, error) {
	p, prev := s.resolve(kind, offset)

	entries, err := s.diaries.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diaries: %w", err)
	}
	prevEntries, err := s.diaries.FetchRange(ctx, &userID, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous period diaries: %w", err)
	}

	report := s.analyzer.MoodTrend(entries, prevEntries, p)
	return &report, nil
}

func (s *Service) CommunityMood(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.CommunityMoodReport, error) {
	p, prev := s.resolve(kind, offset)

	entries, err := s.diaries.FetchRange(ctx, nil, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community diaries: %w", err)
	}
	prevEntries, err := s.diaries.FetchRange(ctx, nil, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous period diaries: %w", err)
	}

	report := s.analyzer.CommunityMood(entries, prevEntries, userID, p)
	return &report, nil
}

func (s *Service) MoodFactors(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset, limit int) (*entity.MoodFactorsReport, error) {
	p, _ := s.resolve(kind, offset)

	entries, err := s.diaries.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diaries: %w", err)
	}

	report := s.analyzer.MoodFactors(entries, p, limit)
	return &report, nil
}

func (s *Service) Completion(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.CompletionReport, error) {
	p, _ := s.resolve(kind, offset)

	activities, err := s.activities.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	report := s.analyzer.Completion(activities, p)
	return &report, nil
}

func (s *Service) LifeBalance(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.LifeBalanceReport, error) {
	p, _ := s.resolve(kind, offset)

	activities, err := s.activities.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	report := s.analyzer.LifeBalance(activities, p)
	return &report, nil
}

func (s *Service) Pattern(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.ActivityPatternReport, error) {
	p, _ := s.resolve(kind, offset)

	mine, err := s.activities.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	community, err := s.activities.FetchRange(ctx, nil, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community activities: %w", err)
	}

	report := s.analyzer.Pattern(mine, community, p)
	return &report, nil
}

// Dashboard composes every report from one round of queries. Each input
// slice is fetched exactly once and shared between the analyzers that need
// it, so the summary endpoint never re-runs an overlapping range query.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID, kind PeriodKind, offset int) (*entity.DashboardSummary, error) {
	cacheKey := fmt.Sprintf("trends:dashboard:%s:%s:%d", userID, kind, offset)
	if s.cache != nil {
		var cached entity.DashboardSummary
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	p, prev := s.resolve(kind, offset)

	myDiaries, err := s.diaries.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diaries: %w", err)
	}
	myPrevDiaries, err := s.diaries.FetchRange(ctx, &userID, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous period diaries: %w", err)
	}
	allDiaries, err := s.diaries.FetchRange(ctx, nil, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community diaries: %w", err)
	}
	allPrevDiaries, err := s.diaries.FetchRange(ctx, nil, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch previous community diaries: %w", err)
	}
	myActivities, err := s.activities.FetchRange(ctx, &userID, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	allActivities, err := s.activities.FetchRange(ctx, nil, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch community activities: %w", err)
	}

	summary := &entity.DashboardSummary{
		Mood:          s.analyzer.MoodTrend(myDiaries, myPrevDiaries, p),
		CommunityMood: s.analyzer.CommunityMood(allDiaries, allPrevDiaries, userID, p),
		MoodFactors:   s.analyzer.MoodFactors(myDiaries, p, defaultFactorLimit),
		Completion:    s.analyzer.Completion(myActivities, p),
		LifeBalance:   s.analyzer.LifeBalance(myActivities, p),
		Pattern:       s.analyzer.Pattern(myActivities, allActivities, p),
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, summary, dashboardCacheTTL)
	}

	return summary, nil
}
