package controllers

import (
	"pos-kasir/models"
	"pos-kasir/services"
	"pos-kasir/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary Cashier login
// @Description Login with the configured admin credentials
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Code:    models.CodeValidationError,
		})
		return
	}

	ok, fieldErrors := utils.ValidateForm(map[string]string{
		"username": req.Username,
		"password": req.Password,
	}, utils.LoginSchema())
	if !ok {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Validation failed",
			Code:    models.CodeValidationError,
			Errors:  fieldErrors,
		})
		return
	}

	result, err := ctrl.auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Login failed, please try again",
			Code:    models.CodeNetworkError,
		})
		return
	}
	if !result.Success {
		c.JSON(401, models.ErrorResponse{
			Success: false,
			Message: result.Message,
			Code:    result.Code,
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": result.Token,
			"user":  result.User,
		},
	})
}

// Logout godoc
// @Summary Logout
// @Description Delete the active session
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.auth.Logout(); err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Logout failed",
			Code:    models.CodeNetworkError,
		})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Logged out"})
}

// Session godoc
// @Summary Current session
// @Description Get the logged-in user, if the session is still valid
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/session [get]
func (ctrl *AuthController) Session(c *gin.Context) {
	user, err := ctrl.auth.CurrentUser()
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Failed to read session",
			Code:    models.CodeNetworkError,
		})
		return
	}
	if user == nil {
		c.JSON(401, models.ErrorResponse{
			Success: false,
			Message: "No active session",
			Code:    models.CodeSessionExpired,
		})
		return
	}
	c.JSON(200, models.Response{Success: true, Message: "Session active", Data: user})
}
