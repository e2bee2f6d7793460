package activity

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
	"github.com/lifelog-app/lifelog-backend/internal/service/activity"
)

type ActivityHandler struct {
	srv activity.ActivityService
}

func NewActivityHandler(srv activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{srv: srv}
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

// CreateActivity godoc
// @Summary Create activity
// @Description Create a planned activity for the authenticated user
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body request.CreateActivity true "Activity"
// @Success 201 {object} wrapper.ResponseWrapper{data=entity.Activity}
// @Failure 400 {object} wrapper.ErrorWrapper
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request.CreateActivity
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

// GetActivity godoc
// @Summary Get activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.Activity}
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid activity ID", Success: false})
		return
	}

	act, err := h.srv.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Activity not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: act, Success: true})
}

// GetActivities godoc
// @Summary List activities
// @Description List the authenticated user's activities, newest first
// @Tags activities
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} wrapper.PaginatedResponseWrapper{data=[]entity.Activity}
// @Failure 500 {object} wrapper.ErrorWrapper
// @Router /activities [get]
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var filter entity.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	activities, pagination, err := h.srv.List(c.Request.Context(), userID, filter.Limit, filter.Offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.PaginatedResponseWrapper{
		Data: activities,
		Meta: response.PaginationMeta{
			CurrentPage: pagination.Page,
			PerPage:     pagination.PerPage,
			TotalItems:  pagination.Total,
			TotalPages:  pagination.TotalPages,
		},
		Success: true,
	})
}

// UpdateActivity godoc
// @Summary Update activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body request.UpdateActivity true "Activity"
// @Success 200 {object} wrapper.ResponseWrapper{data=entity.Activity}
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid activity ID", Success: false})
		return
	}

	var req request.UpdateActivity
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	updated, err := h.srv.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Activity not found", Success: false})
			return
		}
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: updated, Success: true})
}

// DeleteActivity godoc
// @Summary Delete activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} wrapper.SuccessWrapper
// @Failure 404 {object} wrapper.ErrorWrapper
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid activity ID", Success: false})
		return
	}

	if err := h.srv.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Activity not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Activity deleted", Success: true})
}
