package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"online-shop/models"
)

// respondError maps the service error taxonomy onto HTTP statuses. These are
// request-level failures surfaced directly to the caller; nothing here is
// retried.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrBadRequest):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		c.JSON(status, models.ErrorResponse{Success: false, Message: "Internal server error"})
		return
	}

	c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}
