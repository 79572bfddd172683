package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-marketplace-api/internal/api/shared/errors"
	"github.com/feral-file/ff-marketplace-api/internal/domain"
	"github.com/feral-file/ff-marketplace-api/internal/logger"
)

// StatusClientClosedRequest is reported when the client went away before the response was ready
const StatusClientClosedRequest = 499

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondExecutorError maps an executor error to a response
func respondExecutorError(c *gin.Context, err error, message string) {
	if domain.IsCancellation(err) {
		logger.DebugCtx(c.Request.Context(), "Request canceled", zap.Error(err))
		c.AbortWithStatusJSON(StatusClientClosedRequest, apierrors.NewCanceledError())
		return
	}

	if errors.Is(err, domain.ErrNftNotFound) {
		respondNotFound(c, "NFT not found")
		return
	}

	apiErr, ok := apierrors.AsAPIError(err)
	if !ok {
		respondInternalError(c, err, message)
		return
	}

	switch apiErr.Code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		c.JSON(http.StatusBadRequest, apiErr)
	case apierrors.ErrCodeNotFound:
		c.JSON(http.StatusNotFound, apiErr)
	default:
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, apiErr)
	}
}
