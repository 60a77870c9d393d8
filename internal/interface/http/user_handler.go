package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/application"
	"github.com/hppyapp/hppy-backend/internal/domain/entity"
	repo "github.com/hppyapp/hppy-backend/internal/domain/repository"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/response"
	"github.com/hppyapp/hppy-backend/pkg/validation"
)

type UserHandler struct {
	Economy     *application.EconomyService
	Recommended *application.RecommendedService
	Logger      *logrus.Logger
}

func NewUserHandler(economy *application.EconomyService, recommended *application.RecommendedService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Economy: economy, Recommended: recommended, Logger: logger}
}

type updateSettingsRequest struct {
	NotificationFrequency *string                 `json:"notification_frequency"`
	HasHatched            *bool                   `json:"has_hatched"`
	Animals               *[]string               `json:"animals"`
	Items                 *[]entity.InventoryItem `json:"items"`
}

type purchaseRequest struct {
	ItemID   *int   `json:"itemId" binding:"required"`
	ItemName string `json:"itemName" binding:"required"`
	Price    *int   `json:"price" binding:"required,gte=0"`
}

type recommendedRequest struct {
	Activities *[]string `json:"activities" binding:"required"`
}

// GetSettings GET /api/user/settings
func (h *UserHandler) GetSettings(c *gin.Context) {
	settings, err := h.Economy.Settings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondErr(c, h.Logger, "get settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings PATCH /api/user/settings {...partial}
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	settings, err := h.Economy.UpdateSettings(c.Request.Context(), middleware.UserID(c), repo.SettingsUpdate{
		NotificationFrequency: req.NotificationFrequency,
		HasHatched:            req.HasHatched,
		Animals:               req.Animals,
		Items:                 req.Items,
	})
	if err != nil {
		respondErr(c, h.Logger, "update settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Purchase POST /api/user/purchase {itemId, itemName, price}
func (h *UserHandler) Purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err))
		return
	}

	res, err := h.Economy.Purchase(c.Request.Context(), middleware.UserID(c), *req.ItemID, req.ItemName, *req.Price)
	if err != nil {
		respondErr(c, h.Logger, "purchase", err)
		return
	}

	if res.HatchedAnimal != "" {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Egg hatched successfully",
			"coins":         res.Coins,
			"animals":       res.Animals,
			"hatchedAnimal": res.HatchedAnimal,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Purchase successful",
		"coins":   res.Coins,
		"items":   res.Items,
	})
}

// GetRecommended GET /api/user/recommended-activities
func (h *UserHandler) GetRecommended(c *gin.Context) {
	activities, err := h.Recommended.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondErr(c, h.Logger, "get recommended activities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// SaveRecommended POST /api/user/recommended-activities {activities[]}
func (h *UserHandler) SaveRecommended(c *gin.Context) {
	var req recommendedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "activities must be an array")
		return
	}

	activities, err := h.Recommended.Replace(c.Request.Context(), middleware.UserID(c), *req.Activities)
	if err != nil {
		respondErr(c, h.Logger, "save recommended activities", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
