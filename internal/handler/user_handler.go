package handler

import (
	"net/http"

	"linkhop/internal/middleware"
	"linkhop/internal/models"
	"linkhop/internal/response"
	"linkhop/internal/service"

	"github.com/gin-gonic/gin"
)

const authCookieMaxAge = 7 * 24 * 60 * 60

type UserHandler struct {
	service      *service.UserService
	secureCookie bool
}

func NewUserHandler(service *service.UserService, secureCookie bool) *UserHandler {
	return &UserHandler{
		service:      service,
		secureCookie: secureCookie,
	}
}

func (h *UserHandler) setSession(c *gin.Context, access string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, access, authCookieMaxAge, "/", "", h.secureCookie, true)
}

type UserRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Domain   string `json:"domain" binding:"required"`
}

// Register godoc
//
//	@Summary		Register a user
//	@Description	Creates a free-plan account owning its first domain and starts a session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		UserRegisterRequest				true	"Registration data"
//	@Success		201		{object}	response.UserRegisterResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email or domain already in use"
//	@Failure		500		{object}	response.ErrorResponse
//	@Router			/api/v1/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, service.ErrValidation)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Domain)
	if err != nil {
		writeError(c, err)
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), user.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setSession(c, tokens.AccessToken)

	c.JSON(http.StatusCreated, response.UserRegisterResponse{
		User:   response.NewUserResponse(user),
		Tokens: response.TokenResponse(*tokens),
	})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Log in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Credentials"
//	@Success		200			{object}	response.TokenResponse
//	@Failure		400			{object}	response.ErrorResponse
//	@Failure		401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure		429			{object}	response.ErrorResponse
//	@Router			/api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setSession(c, tokens.AccessToken)

	c.JSON(http.StatusOK, response.TokenResponse(*tokens))
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh godoc
//
//	@Summary		Rotate tokens
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			token	body		RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	response.TokenResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		401		{object}	response.ErrorResponse	"Invalid token"
//	@Router			/api/v1/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}
	h.setSession(c, tokens.AccessToken)

	c.JSON(http.StatusOK, response.TokenResponse(*tokens))
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Revokes every refresh token of the user and clears the session cookie
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.MessageResponse
//	@Failure		401	{object}	response.ErrorResponse
//	@Router			/api/v1/auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		writeError(c, service.ErrUnauthenticated)
		return
	}
	if err := h.service.Logout(c.Request.Context(), user.ID); err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// Profile godoc
//
//	@Summary		Current user
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.UserResponse
//	@Failure		401	{object}	response.ErrorResponse
//	@Router			/api/v1/profile/me [get]
func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		writeError(c, service.ErrUnauthenticated)
		return
	}
	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword godoc
//
//	@Summary		Change password
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			passwords	body		ChangePasswordRequest	true	"Current and new password"
//	@Success		200			{object}	response.MessageResponse
//	@Failure		400			{object}	response.ErrorResponse	"Current password is incorrect"
//	@Failure		401			{object}	response.ErrorResponse
//	@Router			/api/v1/profile/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, service.ErrValidation)
		return
	}
	if err := h.service.ChangePassword(c.Request.Context(), middleware.CurrentUser(c), req.CurrentPassword, req.NewPassword); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// UpdatePlan godoc
//
//	@Summary		Switch plan
//	@Description	Changes the subscription plan. No payment is taken
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			plan	body		UpdatePlanRequest	true	"free, basic or premium"
//	@Success		200		{object}	response.UserResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		401		{object}	response.ErrorResponse
//	@Router			/api/v1/profile/plan [put]
func (h *UserHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	user := middleware.CurrentUser(c)
	if err := h.service.UpdatePlan(c.Request.Context(), user, models.Plan(req.Plan)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

// Plans godoc
//
//	@Summary		List plans
//	@Description	current is set on the caller's plan when a token is sent
//	@Tags			plans
//	@Produce		json
//	@Success		200	{array}	response.PlanResponse
//	@Router			/api/v1/plans [get]
func (h *UserHandler) Plans(c *gin.Context) {
	var current models.Plan
	if user := middleware.CurrentUser(c); user != nil {
		current = user.Plan
	}
	plans := service.PlanLimits()
	resp := make([]response.PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, response.PlanResponse{
			ID:          string(p.ID),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			MaxLinks:    p.MaxLinks,
			MaxDomains:  p.MaxDomains,
			Features:    p.Features,
			Current:     p.ID == current,
		})
	}
	c.JSON(http.StatusOK, resp)
}
