package handler

import (
	"net/http"
	"strings"

	"cashmemo/config"
	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthHandler serves seller accounts, admin sessions and the admin user console.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	secureCookie bool
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{authUC: params.AuthUC, cookieName: "admin_token"}
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.AdminCookieName != "" {
			h.cookieName = params.Config.Auth.AdminCookieName
		}
		h.secureCookie = params.Config.Auth.SecureCookie
	}

	return h
}

// RegisterRequest opens a seller account together with its shop.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,bdmobile"`
	Password string `json:"password" validate:"required"`
	ShopName string `json:"shop_name" validate:"required,max=100"`
}

// LoginRequest accepts an email address or a mobile number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Password   string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AdminLoginRequest signs an administrator in.
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateMeRequest edits the caller's account. Omitted fields are unchanged.
type UpdateMeRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=100"`
	Mobile *string `json:"mobile" validate:"omitempty,bdmobile"`
}

// SetUserActiveRequest activates or deactivates a seller.
type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// TokenResponse is returned by every sign-in endpoint.
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *entity.User  `json:"user,omitempty"`
	Admin        *entity.Admin `json:"admin,omitempty"`
}

// Register handles seller sign-up.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
		ShopName: req.ShopName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
		User:         output.User,
	}, "Registration successful")
}

// Login handles seller sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Email)
	}
	if identifier == "" {
		identifier = strings.TrimSpace(req.Mobile)
	}
	if identifier == "" {
		return domainerrors.NewValidationError("identifier is required")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
		User:         output.User,
	})
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   output.ExpiresIn,
	})
}

// AdminLogin signs an administrator in and sets the admin cookie.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.AdminLogin(c.Request().Context(), &usecase.AdminLoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.adminCookie(output.AccessToken, int(output.ExpiresIn)))

	return response.OK(c, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    output.ExpiresIn,
		Admin:        output.Admin,
	})
}

// AdminLogout clears the admin cookie. Tokens are stateless and expire on their own.
func (h *AuthHandler) AdminLogout(c echo.Context) error {
	c.SetCookie(h.adminCookie("", -1))

	return response.Message(c, "Logged out")
}

func (h *AuthHandler) adminCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// GetMe returns the caller's account with its shop.
func (h *AuthHandler) GetMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// UpdateMe edits the caller's name or mobile.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.UpdateMe(c.Request().Context(), userID, &usecase.UpdateMeInput{
		Name:   req.Name,
		Mobile: req.Mobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

// ListUsers lists seller accounts for the admin console.
func (h *AuthHandler) ListUsers(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	result, err := h.authUC.ListUsers(c.Request().Context(), &usecase.ListUsersInput{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// SetUserActive activates or deactivates a seller account.
func (h *AuthHandler) SetUserActive(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req SetUserActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.SetUserActive(c.Request().Context(), userID, *req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}
