package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mailscope/mailscope/ent"
	"github.com/mailscope/mailscope/pkg/calendar"
	"github.com/mailscope/mailscope/pkg/taxonomy"
)

// serviceError maps known service errors to HTTP responses; everything
// else is logged and returned as a 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, taxonomy.ErrNotFound), errors.Is(err, calendar.ErrNotFound), ent.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, calendar.ErrNotPublishable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		serverError(c, err)
	}
}

func serverError(c *gin.Context, err error) {
	slog.Error("Request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
