package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Piiquante/internal/handler/http/dto"
	"github.com/mikiasgoitom/Piiquante/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Piiquante/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// UsecaseErrorHandler maps usecase errors to status codes. Storage failures
// are reported without their cause; the usecase has already logged it.
func UsecaseErrorHandler(c *gin.Context, err error) {
	var rejected *usecase.VoteRejectedError
	switch {
	case errors.As(err, &rejected):
		ErrorHandler(c, http.StatusBadRequest, rejected.Reason)
	case errors.Is(err, usecase.ErrSauceNotFound):
		ErrorHandler(c, http.StatusNotFound, "Sauce not found")
	case errors.Is(err, usecase.ErrForbidden):
		ErrorHandler(c, http.StatusForbidden, "Unauthorized request")
	case errors.Is(err, usecase.ErrInvalidVoter), errors.Is(err, usecase.ErrInvalidInput):
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, usecase.ErrEmailTaken):
		ErrorHandler(c, http.StatusConflict, "Email already registered")
	default:
		_ = c.Error(err)
		ErrorHandler(c, http.StatusInternalServerError, "internal server error")
	}
}

// callerID returns the authenticated user id, answering 401 when it is missing.
func callerID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return "", false
	}
	return userIDStr, true
}

// checkBodyUserID refuses a body userId that names someone other than the caller.
func checkBodyUserID(c *gin.Context, bodyUserID, caller string) bool {
	if bodyUserID != "" && bodyUserID != caller {
		ErrorHandler(c, http.StatusForbidden, "Invalid user ID")
		return false
	}
	return true
}
