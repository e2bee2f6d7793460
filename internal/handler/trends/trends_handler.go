package trends

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/internal/model/response/wrapper"
	"github.com/lifelog-app/lifelog-backend/internal/service/trends"
)

type TrendsService interface {
	MoodTrend(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.MoodTrendReport, error)
	CommunityMood(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.CommunityMoodReport, error)
	MoodFactors(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset, limit int) (*entity.MoodFactorsReport, error)
	Completion(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.CompletionReport, error)
	LifeBalance(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.LifeBalanceReport, error)
	Pattern(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.ActivityPatternReport, error)
	Dashboard(ctx context.Context, userID uuid.UUID, kind trends.PeriodKind, offset int) (*entity.DashboardSummary, error)
}

type TrendsHandler struct {
	srv TrendsService
}

func NewTrendsHandler(srv TrendsService) *TrendsHandler {
	return &TrendsHandler{srv: srv}
}

// periodParams parses the shared period/offset query pair. Handlers bail out
// with a 400 when the period keyword is unknown.
func periodParams(c *gin.Context) (trends.PeriodKind, int, bool) {
	kind, ok := trends.ParsePeriodKind(c.DefaultQuery("period", "week"))
	if !ok {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "period must be week, month or year", Success: false})
		return "", 0, false
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "offset must be an integer", Success: false})
		return "", 0, false
	}

	return kind, offset, true
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User ID not found", Success: false})
		return uuid.Nil, false
	}
	userID, err := uuid.FromString(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid user ID", Success: false})
		return uuid.Nil, false
	}
	return userID, true
}

// GetMoodTrend godoc
// @Summary Personal mood trend
// @Description Daily mood averages, summary statistics and trend direction for one period
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.MoodTrendReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/mood [get]
func (h *TrendsHandler) GetMoodTrend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.srv.MoodTrend(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetCommunityMood godoc
// @Summary Community mood trend
// @Description Mood trend over every user's entries plus the caller's percentile rank
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.CommunityMoodReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/mood/community [get]
func (h *TrendsHandler) GetCommunityMood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.srv.CommunityMood(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetMoodFactors godoc
// @Summary Mood factor rankings
// @Description Tags ranked by frequency within good-mood and bad-mood diary entries
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Param limit query int false "Tags per ranking" default(5)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.MoodFactorsReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/mood-factors [get]
func (h *TrendsHandler) GetMoodFactors(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "limit must be a positive integer", Success: false})
		return
	}

	report, err := h.srv.MoodFactors(c.Request.Context(), userID, kind, offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetCompletion godoc
// @Summary Activity completion
// @Description Status distribution, completion rate, daily rates and best streak
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.CompletionReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/completion [get]
func (h *TrendsHandler) GetCompletion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.srv.Completion(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetLifeBalance godoc
// @Summary Life balance distribution
// @Description Activity share per category with imbalance warnings
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.LifeBalanceReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/life-balance [get]
func (h *TrendsHandler) GetLifeBalance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.srv.LifeBalance(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetPattern godoc
// @Summary Activity time pattern
// @Description Weekday/hour heatmap, peak time slots and the community category mix
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.ActivityPatternReport}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/pattern [get]
func (h *TrendsHandler) GetPattern(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	report, err := h.srv.Pattern(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: report, Success: true})
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Every trends report for one period, computed from a single round of queries
// @Tags trends
// @Produce json
// @Param period query string false "week, month or year" default(week)
// @Param offset query int false "Periods back (negative) or forward (positive)" default(0)
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.DashboardSummary}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /trends/summary [get]
func (h *TrendsHandler) GetSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	kind, offset, ok := periodParams(c)
	if !ok {
		return
	}

	summary, err := h.srv.Dashboard(c.Request.Context(), userID, kind, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: summary, Success: true})
}
