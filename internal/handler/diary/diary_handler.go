package diary

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"github.com/lifelog-app/lifelog-backend/internal/entity"
	"github.com/lifelog-app/lifelog-backend/internal/model/request"
	"github.com/lifelog-app/lifelog-backend/internal/model/response"
	"github.com/lifelog-app/lifelog-backend/internal/model/response/wrapper"
	"github.com/lifelog-app/lifelog-backend/internal/repository"
	"github.com/lifelog-app/lifelog-backend/internal/service/diary"
)

type DiaryHandler struct {
	srv diary.DiaryService
}

func NewDiaryHandler(srv diary.DiaryService) *DiaryHandler {
	return &DiaryHandler{srv: srv}
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

// CreateDiary godoc
// @Summary Create diary entry
// @Description Create a new diary entry for the authenticated user
// @Tags diaries
// @Accept json
// @Produce json
// @Param diary body request.CreateDiary true "Diary entry"
// @Success 201 {object} wrapper.ResponseWrapper{data=entity.Diary}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /diaries [post]
func (h *DiaryHandler) CreateDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request.CreateDiary
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	created, err := h.srv.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: created, Success: true})
}

// GetDiary godoc
// @Summary Get diary entry
// @Description Get one diary entry by ID
// @Tags diaries
// @Produce json
// @Param id path string true "Diary ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.Diary}
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /diaries/{id} [get]
func (h *DiaryHandler) GetDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid diary ID", Success: false})
		return
	}

	entry, err := h.srv.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Diary entry not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: entry, Success: true})
}

// GetDiaries godoc
// @Summary List diary entries
// @Description List the authenticated user's diary entries, newest first
// @Tags diaries
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} wrapper.PaginatedResponseWrapper{data=[]entity.Diary}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /diaries [get]
func (h *DiaryHandler) GetDiaries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter entity.DiaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	entries, pagination, err := h.srv.List(c.Request.Context(), userID, filter.Limit, filter.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.PaginatedResponseWrapper{
		Data: entries,
		Meta: response.PaginationMeta{
			CurrentPage: pagination.Page,
			PerPage:     pagination.PerPage,
			TotalItems:  pagination.Total,
			TotalPages:  pagination.TotalPages,
		},
		Success: true,
	})
}

// UpdateDiary godoc
// @Summary Update diary entry
// @Description Replace a diary entry's fields
// @Tags diaries
// @Accept json
// @Produce json
// @Param id path string true "Diary ID"
// @Param diary body request.UpdateDiary true "Diary entry"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.Diary}
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /diaries/{id} [put]
func (h *DiaryHandler) UpdateDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid diary ID", Success: false})
		return
	}

	var req request.UpdateDiary
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	updated, err := h.srv.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Diary entry not found", Success: false})
			return
		}
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: updated, Success: true})
}

// DeleteDiary godoc
// @Summary Delete diary entry
// @Tags diaries
// @Produce json
// @Param id path string true "Diary ID"
// @Success 200 {object} wrapper.SuccessWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /diaries/{id} [delete]
func (h *DiaryHandler) DeleteDiary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid diary ID", Success: false})
		return
	}

	if err := h.srv.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Diary entry not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Diary entry deleted", Success: true})
}
