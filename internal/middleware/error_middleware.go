package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. It is the single
// place that decides status codes; unknown errors become a 500 whose cause
// is only logged.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorToResponse(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(ContextKeyRequestID)).
			Msg("Unhandled error")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorToResponse(err error) (int, *dto.ErrorDetail) {
	msg, hasMsg := apperrors.UserMessage(err)
	pick := func(fallback string) string {
		if hasMsg {
			return msg
		}
		return fallback
	}

	var custom *apperrors.CustomError
	var details interface{}
	if errors.As(err, &custom) && len(custom.Details) > 0 {
		details = custom.Details
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidUserType):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeInvalidUserType, pick("Invalid user type"))
	case apperrors.Is(err, apperrors.ErrRegistrationLimit, apperrors.ErrDuplicateRegistration):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeRegistrationRule, pick(err.Error())).WithDetails(details)
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, pick("Student already exists"))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, pick("Validation failed")).WithDetails(details)
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, pick("Student not found"))
	case errors.Is(err, apperrors.ErrProgramNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, pick("Program not found"))
	case errors.Is(err, apperrors.ErrUnitNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, pick("Unit not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, pick("Resource not found"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
