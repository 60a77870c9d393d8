package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/application"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/response"
	"github.com/hppyapp/hppy-backend/pkg/validation"
)

type ActivityHandler struct {
	Svc    *application.ActivityService
	Logger *logrus.Logger
}

func NewActivityHandler(svc *application.ActivityService, logger *logrus.Logger) *ActivityHandler {
	return &ActivityHandler{Svc: svc, Logger: logger}
}

type createActivityRequest struct {
	Name      string     `json:"name" binding:"required"`
	Happiness *int       `json:"happiness" binding:"required,gte=0,lte=100"`
	CreatedAt *time.Time `json:"created_at"`
}

type updateActivityRequest struct {
	Name      *string `json:"name"`
	Happiness *int    `json:"happiness" binding:"omitempty,gte=0,lte=100"`
}

// Create POST /api/activities {name, happiness, created_at?}
func (h *ActivityHandler) Create(c *gin.Context) {
	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	activity, coins, err := h.Svc.Log(c.Request.Context(), middleware.UserID(c), application.LogActivityInput{
		Name:      req.Name,
		Happiness: *req.Happiness,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		respondErr(c, h.Logger, "create activity", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity, "coins": coins})
}

// List GET /api/activities
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondErr(c, h.Logger, "list activities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// Update PATCH /api/activities/:id {name?, happiness?}
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := activityID(c)
	if !ok {
		return
	}

	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	activity, err := h.Svc.Update(c.Request.Context(), middleware.UserID(c), id, req.Name, req.Happiness)
	if err != nil {
		respondErr(c, h.Logger, "update activity", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// Delete DELETE /api/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := activityID(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondErr(c, h.Logger, "delete activity", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}

// activityID parses the :id param. A non-numeric id can never match a row,
// so it reports the same not-found the lookup would.
func activityID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, application.ErrActivityNotFound.Error())
		return 0, false
	}
	return id, true
}
