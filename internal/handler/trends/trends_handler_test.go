package trends

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/internal/service/trends"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	kind   trends.PeriodKind
	offset int
	limit  int
	userID uuid.UUID
}

func (s *stubService) MoodTrend(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.MoodTrendReport, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.MoodTrendReport{Period: string(kind), Trend: "stable"}, nil
}

func (s *stubService) CommunityMood(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.CommunityMoodReport, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.CommunityMoodReport{}, nil
}

func (s *stubService) MoodFactors(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset, limit int) (*entity.MoodFactorsReport, error) {
	s.userID, s.kind, s.offset, s.limit = userID, kind, offset, limit
	return &entity.MoodFactorsReport{}, nil
}

func (s *stubService) Completion(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.CompletionReport, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.CompletionReport{}, nil
}

func (s *stubService) LifeBalance(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.LifeBalanceReport, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.LifeBalanceReport{}, nil
}

func (s *stubService) Pattern(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.ActivityPatternReport, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.ActivityPatternReport{}, nil
}

func (s *stubService) Dashboard(_ context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.DashboardSummary, error) {
	s.userID, s.kind, s.offset = userID, kind, offset
	return &entity.DashboardSummary{}, nil
}

func setupRouter(stub *stubService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})

	h := NewTrendsHandler(stub)
	r.GET("/trends/mood", h.GetMoodTrend)
	r.GET("/trends/mood-factors", h.GetMoodFactors)
	r.GET("/trends/summary", h.GetSummary)
	return r
}

func TestGetMoodTrendDefaults(t *testing.T) {
	stub := &stubService{}
	me := uuid.Must(uuid.NewV4())
	r := setupRouter(stub, me.String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trends/mood", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, trends.PeriodWeek, stub.kind)
	assert.Equal(t, 0, stub.offset)
	assert.Equal(t, me, stub.userID)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestGetMoodTrendPeriodParams(t *testing.T) {
	stub := &stubService{}
	r := setupRouter(stub, uuid.Must(uuid.NewV4()).String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trends/mood?period=month&offset=-2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, trends.PeriodMonth, stub.kind)
	assert.Equal(t, -2, stub.offset)
}

func TestGetMoodTrendRejectsBadParams(t *testing.T) {
	stub := &stubService{}
	r := setupRouter(stub, uuid.Must(uuid.NewV4()).String())

	for _, query := range []string{"period=decade", "offset=soon"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/trends/mood?"+query, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestGetMoodTrendUnauthenticated(t *testing.T) {
	r := setupRouter(&stubService{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trends/mood", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetMoodFactorsLimit(t *testing.T) {
	stub := &stubService{}
	r := setupRouter(stub, uuid.Must(uuid.NewV4()).String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trends/mood-factors?limit=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, stub.limit)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/trends/mood-factors?limit=0", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSummary(t *testing.T) {
	stub := &stubService{}
	r := setupRouter(stub, uuid.Must(uuid.NewV4()).String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trends/summary?period=year", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, trends.PeriodYear, stub.kind)
}
