package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/minhvu/user-admin/internal/middleware"
	"github.com/minhvu/user-admin/internal/models"
	"github.com/minhvu/user-admin/internal/services"
)

const (
	flashSuccess = "success"
	flashError   = "error"
)

// setFlash stores a one-shot message on the session.
func setFlash(c *gin.Context, key, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, key)
	_ = session.Save()
}

// takeFlash pops a one-shot message from the session, if any.
func takeFlash(c *gin.Context, key string) string {
	session := sessions.Default(c)
	flashes := session.Flashes(key)
	_ = session.Save()

	if len(flashes) == 0 {
		return ""
	}
	if msg, ok := flashes[0].(string); ok {
		return msg
	}
	return ""
}

// flashes collects both flash slots for a render.
func flashes(c *gin.Context) gin.H {
	return gin.H{
		"success": takeFlash(c, flashSuccess),
		"error":   takeFlash(c, flashError),
	}
}

// currentActor loads the authenticated user behind the session, or
// redirects to the login screen when the session points nowhere.
func currentActor(c *gin.Context, authService *services.AuthService) (*models.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	actor, err := authService.CurrentUser(userID)
	if err != nil {
		// Stale session for a deleted account
		session := sessions.Default(c)
		session.Clear()
		_ = session.Save()
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	return actor, true
}

// fieldErrors turns a binding failure into per-field messages for
// re-rendering forms.
func fieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return fields
	}

	fields["Form"] = "Invalid input."
	return fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Must be a valid email address."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "eqfield":
		return "Does not match."
	default:
		return "Invalid value."
	}
}
