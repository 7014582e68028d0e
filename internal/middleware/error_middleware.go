package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/harish176/placement-portal/internal/app/models/dto"
	"github.com/harish176/placement-portal/internal/pkg/apperrors"
	"github.com/harish176/placement-portal/internal/pkg/logger"
)

const msgInternal = "Internal server error"

// HandleAPIError renders err as the error envelope and aborts the request.
// Every kind is mapped here; anything that is not an application error is
// treated as internal and its detail is only logged.
func HandleAPIError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	if status >= 500 {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", RequestIDFrom(c)).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

func errorResponse(err error) (int, dto.APIResponse) {
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}
	code := dto.CodeForKind(appErr.Kind)

	switch appErr.Kind {
	case apperrors.KindValidation:
		var data interface{}
		if len(appErr.Fields) > 0 {
			data = dto.FieldErrors{Errors: appErr.Fields}
		}
		return appErr.Status(), dto.NewErrorResponse(code, appErr.Message, data)
	case apperrors.KindDuplicateKey:
		var data interface{}
		if appErr.Field != "" {
			data = gin.H{"field": appErr.Field}
		}
		return appErr.Status(), dto.NewErrorResponse(code, appErr.Message, data)
	case apperrors.KindStudentNotFound:
		return appErr.Status(), dto.NewErrorResponse(code, appErr.Message, gin.H{"field": appErr.Field})
	case apperrors.KindApprovalPending:
		return appErr.Status(), dto.NewErrorResponse(code, appErr.Message, appErr.Data)
	case apperrors.KindInvalidID, apperrors.KindNotFound, apperrors.KindUnauthorized, apperrors.KindForbidden:
		return appErr.Status(), dto.NewErrorResponse(code, appErr.Message, nil)
	case apperrors.KindInternal:
		return appErr.Status(), dto.NewErrorResponse(code, msgInternal, nil)
	}
	return apperrors.KindInternal.Status(), dto.NewErrorResponse(dto.ErrorCodeInternalServer, msgInternal, nil)
}

// Recovery turns panics into the internal error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Str("requestID", RequestIDFrom(c)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(apperrors.KindInternal.Status(), dto.NewErrorResponse(dto.ErrorCodeInternalServer, msgInternal, nil))
	})
}

// NotFound answers unmatched routes with the envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(apperrors.KindNotFound.Status(), dto.NewErrorResponse(dto.ErrorCodeNotFound, "Route not found", nil))
	}
}
