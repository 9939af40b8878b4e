package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"plupool-server/services"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a 500 and gets logged.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not found",
			"message": notFound.Error(),
		})
		return
	}

	var validation *services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"message": validation.Error(),
		})
		return
	}

	var forbidden *services.ForbiddenError
	if errors.As(err, &forbidden) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": forbidden.Error(),
		})
		return
	}

	var transition *services.InvalidTransitionError
	if errors.As(err, &transition) {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Invalid status transition",
			"message": transition.Error(),
		})
		return
	}

	var precondition *services.PreconditionError
	if errors.As(err, &precondition) {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"error":   "Precondition failed",
			"message": precondition.Error(),
		})
		return
	}

	log.Printf("❌ Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"message": "Something went wrong. Please try again later.",
	})
}
