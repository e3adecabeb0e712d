package handlers

import (
	"errors"
	"net/http"

	"approval-tracker/internal/lifecycle"

	"github.com/gin-gonic/gin"
)

// writeEngineError traduce la taxonomía de errores del motor a respuestas
// HTTP. Todo lo que no sea de la taxonomía se trata como error interno.
func writeEngineError(c *gin.Context, err error) {
	var validation *lifecycle.ValidationError
	var notFound *lifecycle.NotFoundError
	var transition *lifecycle.InvalidTransitionError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Solicitud no encontrada"})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}
