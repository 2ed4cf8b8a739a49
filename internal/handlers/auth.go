package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/minhvu/user-admin/internal/constants"
	"github.com/minhvu/user-admin/internal/services"
)

// AuthHandler coordinates the sign-in screens and session state.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowLogin renders the sign-in form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", flashes(c))
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type loginForm struct {
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "login.html", gin.H{
			"error":  "Email and password are required.",
			"errors": fieldErrors(err),
		})
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		message := "Sign in failed."
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrInactiveAccount) {
			message = err.Error()
		}
		c.HTML(http.StatusUnprocessableEntity, "login.html", gin.H{
			"error": message,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"error": "Failed to save session.",
		})
		return
	}

	// Admins land on the listing; everyone else on their own profile.
	if user.IsAdmin {
		c.Redirect(http.StatusFound, "/users")
		return
	}
	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(user.ID, 10))
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}
