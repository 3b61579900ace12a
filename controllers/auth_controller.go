package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"online-shop/models"
	"online-shop/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfile godoc
// @Summary Get profile
// @Description Get the authenticated user's account
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Router /auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	user, err := ctrl.auth.GetProfile(c.Request.Context(), c.GetString("user_email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}
