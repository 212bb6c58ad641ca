// Package response translates service errors into HTTP JSON envelopes.
package response

import (
	"log/slog"
	"net/http"
	"strconv"

	"filmorate/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// PathID parses a numeric path parameter, answering 400 itself when the
// value is not a valid id.
func PathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// Error writes the JSON error envelope for err. Validation maps to 400,
// not-found to 404, conflict to 409; everything else is logged with full
// detail and reported as a generic 500 so internals never leak.
func Error(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("internal error", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
