package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/api/middleware"
	"github.com/Employeest/employeest-be/internal/dto"
	"github.com/Employeest/employeest-be/internal/service"
	"github.com/Employeest/employeest-be/pkg/responses"
	"github.com/Employeest/employeest-be/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account.
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "registration payload"
// @Success 201 {object} responses.Response{data=dto.ProfileResponse}
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	profile, err := h.authService.Register(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Created(c, profile)
}

// Login authenticates a user and issues an access token.
// @Summary Log in with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "login payload"
// @Success 200 {object} responses.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Logout revokes the caller's access token.
// @Summary Revoke the current access token
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(middleware.GetTokenKey(c)); err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, nil)
}

// Profile returns the authenticated user's profile.
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.ProfileResponse}
// @Router /api/v1/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	actor := middleware.GetActor(c)

	profile, err := h.authService.Profile(actor.ID)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, profile)
}

// UpdateProfile edits the authenticated user's own profile.
// @Summary Update the authenticated user's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.UpdateProfileRequest true "fields to update"
// @Success 200 {object} responses.Response{data=dto.ProfileResponse}
// @Router /api/v1/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, http.StatusBadRequest, "invalid request payload", utils.FormatValidationError(err))
		return
	}

	profile, err := h.authService.UpdateProfile(middleware.GetActor(c).ID, &req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, profile)
}
