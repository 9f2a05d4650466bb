package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/repository"
	"github.com/1005Studio/1005ManagmentV02/internal/service/catalog"
	"github.com/1005Studio/1005ManagmentV02/internal/service/production"
)

// errBadRequest marks malformed query parameters and bodies.
var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, production.ErrInvalidRecord),
		errors.Is(err, catalog.ErrInvalidItem),
		errors.Is(err, catalog.ErrWholeYearPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a JSON error body. Server errors are logged and their details hidden.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Debug(msg, zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}

func errBadRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errBadRequest}, args...)...)
}
