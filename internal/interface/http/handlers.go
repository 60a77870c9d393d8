package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hppyapp/hppy-backend/internal/application"
	"github.com/hppyapp/hppy-backend/internal/interface/middleware"
	"github.com/hppyapp/hppy-backend/pkg/response"
)

// respondErr maps service errors onto the HTTP statuses of the API contract.
// Anything unrecognized is logged server-side and surfaced as an opaque 500.
func respondErr(c *gin.Context, logger *logrus.Logger, op string, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidPhone),
		errors.Is(err, application.ErrNameRequired),
		errors.Is(err, application.ErrHappinessRange),
		errors.Is(err, application.ErrNoFields),
		errors.Is(err, application.ErrInsufficientCoins),
		errors.Is(err, application.ErrAllAnimalsCollected):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrActivityNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrPhoneTaken):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"op":         op,
				"request_id": c.GetString("request_id"),
				"user_id":    middleware.UserID(c),
			}).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}
