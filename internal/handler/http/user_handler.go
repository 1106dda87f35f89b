package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Piiquante/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Signup handles account creation
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.userUsecase.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	MessageHandler(c, http.StatusCreated, "User created")
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	userID, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{UserID: userID, Token: token})
}
