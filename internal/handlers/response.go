package handlers

import (
	"errors"
	"net/http"

	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/repositories"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidData = "Invalid data"
	msgServerError = "Server Error"
)

// respondMessage writes the {"message": ...} body every API error and confirmation uses
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondError maps service errors to a status code. notFound is the message for a missing record.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrInvalidData):
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
	case errors.Is(err, repositories.ErrNotFound) && notFound != "":
		respondMessage(c, http.StatusNotFound, notFound)
	default:
		logger.GetLogger("app").WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).WithError(err).Error("request failed")
		respondMessage(c, http.StatusInternalServerError, msgServerError)
	}
}
