package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/minhvu/user-admin/internal/dto"
	weberrors "github.com/minhvu/user-admin/internal/errors"
	"github.com/minhvu/user-admin/internal/models"
	"github.com/minhvu/user-admin/internal/policy"
	"github.com/minhvu/user-admin/internal/services"
)

// UserHandler serves the user administration screens.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	policy      *policy.UserPolicy
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService, userPolicy *policy.UserPolicy) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		policy:      userPolicy,
	}
}

// Index renders the listing of all users, tasks preloaded.
func (h *UserHandler) Index(c *gin.Context) {
	actor, ok := currentActor(c, h.authService)
	if !ok {
		return
	}

	if !h.policy.ViewAny(actor) {
		weberrors.Forbidden(c, "")
		return
	}

	users, err := h.userService.ListUsers()
	if err != nil {
		weberrors.InternalError(c, "Failed to load users")
		return
	}

	data := flashes(c)
	data["users"] = dto.ToUserDTOs(users)
	data["actor"] = dto.ToUserDTO(*actor)
	c.HTML(http.StatusOK, "users_index.html", data)
}

// Create renders the new-user form.
func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c, h.authService)
	if !ok {
		return
	}

	if !h.policy.Create(actor) {
		weberrors.Forbidden(c, "")
		return
	}

	c.HTML(http.StatusOK, "users_create.html", gin.H{
		"actor": dto.ToUserDTO(*actor),
	})
}

// storeUserForm carries the create-form fields. There is deliberately no
// admin flag here: the flag is read separately after the authorization
// check and never travels through bulk binding.
type storeUserForm struct {
	FirstName            string `form:"first_name" binding:"required,max=255"`
	LastName             string `form:"last_name" binding:"required,max=255"`
	Username             string `form:"username" binding:"required,max=255"`
	Email                string `form:"email" binding:"required,email,max=255"`
	Password             string `form:"password" binding:"required"`
	PasswordConfirmation string `form:"password_confirmation" binding:"required,eqfield=Password"`
}

// Store validates and creates a user, then returns to the listing.
func (h *UserHandler) Store(c *gin.Context) {
	actor, ok := currentActor(c, h.authService)
	if !ok {
		return
	}

	if !h.policy.Create(actor) {
		weberrors.Forbidden(c, "")
		return
	}

	var form storeUserForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCreateForm(c, actor, form, fieldErrors(err))
		return
	}

	// Privileged field, read only after the policy check above passed.
	makeAdmin := c.PostForm("is_admin") == "1"

	_, err := h.userService.CreateUser(services.CreateUserInput{
		FirstName:            form.FirstName,
		LastName:             form.LastName,
		Username:             form.Username,
		Email:                form.Email,
		Password:             form.Password,
		PasswordConfirmation: form.PasswordConfirmation,
		MakeAdmin:            makeAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			h.renderCreateForm(c, actor, form, map[string]string{"Email": "This email is already in use."})
		case errors.Is(err, services.ErrPasswordTooShort):
			h.renderCreateForm(c, actor, form, map[string]string{"Password": "Password is too short."})
		case errors.Is(err, services.ErrPasswordMismatch):
			h.renderCreateForm(c, actor, form, map[string]string{"PasswordConfirmation": "Does not match."})
		default:
			setFlash(c, flashError, "Failed to create user: "+err.Error())
			c.Redirect(http.StatusFound, "/users")
		}
		return
	}

	setFlash(c, flashSuccess, "User created successfully.")
	c.Redirect(http.StatusFound, "/users")
}

// Show renders a single user's profile with their tasks.
func (h *UserHandler) Show(c *gin.Context) {
	actor, subject, ok := h.loadActorAndSubject(c, "Tasks")
	if !ok {
		return
	}

	if !h.policy.View(actor, subject) {
		weberrors.Forbidden(c, "")
		return
	}

	data := flashes(c)
	data["user"] = dto.ToUserDTO(*subject)
	data["actor"] = dto.ToUserDTO(*actor)
	c.HTML(http.StatusOK, "users_show.html", data)
}

// Edit renders the edit form for a user.
func (h *UserHandler) Edit(c *gin.Context) {
	actor, subject, ok := h.loadActorAndSubject(c)
	if !ok {
		return
	}

	if !h.policy.Update(actor, subject) {
		weberrors.Forbidden(c, "")
		return
	}

	c.HTML(http.StatusOK, "users_edit.html", gin.H{
		"user":  dto.ToUserDTO(*subject),
		"actor": dto.ToUserDTO(*actor),
	})
}

// Update changes the user's username from the submitted name and returns
// to the profile. Other profile fields are left untouched by this path.
func (h *UserHandler) Update(c *gin.Context) {
	actor, subject, ok := h.loadActorAndSubject(c)
	if !ok {
		return
	}

	if !h.policy.Update(actor, subject) {
		weberrors.Forbidden(c, "")
		return
	}

	if _, err := h.userService.UpdateUser(subject.ID, services.UpdateUserInput{
		Username: c.PostForm("name"),
	}); err != nil {
		setFlash(c, flashError, "Failed to update user: "+err.Error())
	} else {
		setFlash(c, flashSuccess, "User updated successfully.")
	}

	c.Redirect(http.StatusFound, "/users/"+strconv.FormatUint(subject.ID, 10))
}

// Destroy deletes a user together with their tasks and role assignments.
func (h *UserHandler) Destroy(c *gin.Context) {
	actor, subject, ok := h.loadActorAndSubject(c)
	if !ok {
		return
	}

	if !h.policy.AdminAccess(actor) {
		weberrors.Forbidden(c, "")
		return
	}

	if err := h.userService.DeleteUser(subject.ID); err != nil {
		setFlash(c, flashError, "Failed to delete user: "+err.Error())
		c.Redirect(http.StatusFound, "/users")
		return
	}

	setFlash(c, flashSuccess, "User deleted successfully.")
	c.Redirect(http.StatusFound, "/users")
}

// loadActorAndSubject resolves the session actor and the routed user.
// Missing subjects render 404 before any policy runs, so "not found" and
// "forbidden" stay distinct.
func (h *UserHandler) loadActorAndSubject(c *gin.Context, preload ...string) (*models.User, *models.User, bool) {
	actor, ok := currentActor(c, h.authService)
	if !ok {
		return nil, nil, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		weberrors.NotFound(c, "")
		return nil, nil, false
	}

	subject, err := h.userService.GetUser(id, preload...)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			weberrors.NotFound(c, "")
		} else {
			weberrors.InternalError(c, "Failed to load user")
		}
		return nil, nil, false
	}

	return actor, subject, true
}

func (h *UserHandler) renderCreateForm(c *gin.Context, actor *models.User, form storeUserForm, errs map[string]string) {
	c.HTML(http.StatusUnprocessableEntity, "users_create.html", gin.H{
		"actor":  dto.ToUserDTO(*actor),
		"errors": errs,
		"old": gin.H{
			"FirstName": form.FirstName,
			"LastName":  form.LastName,
			"Username":  form.Username,
			"Email":     form.Email,
		},
	})
}
