package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/minhvu/user-admin/internal/constants"
	"github.com/minhvu/user-admin/internal/middleware"
	"github.com/minhvu/user-admin/internal/policy"
	"github.com/minhvu/user-admin/internal/repository"
	"github.com/minhvu/user-admin/internal/services"
	"github.com/minhvu/user-admin/internal/utils"
	"gorm.io/gorm"
)

// buildTestRouter wires the same routes the server binary registers, with a
// cookie session store and an extra middleware that signs in whichever user
// *actorID points at. Tests flip *actorID instead of replaying the login
// form for every request.
func buildTestRouter(db *gorm.DB, actorID *uint64) (*gin.Engine, *services.UserService) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"formatDateYMD":    utils.FormatDateYMD,
		"formatDateDMY":    utils.FormatDateDMY,
		"formatDateYMDHIS": utils.FormatDateYMDHIS,
		"formatDateDMYHIS": utils.FormatDateDMYHIS,
	})
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(func(c *gin.Context) {
		if *actorID != 0 {
			session := sessions.Default(c)
			session.Set(constants.ContextKeyUserID, *actorID)
		}
		c.Next()
	})

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, roleRepo)
	taskService := services.NewTaskService(taskRepo)
	userPolicy := policy.NewUserPolicy()

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, authService, userPolicy)
	taskHandler := NewTaskHandler(taskService)

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	r.GET("/tasks", taskHandler.Index)

	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", userHandler.Index)
		users.GET("/create", userHandler.Create)
		users.POST("", userHandler.Store)
		users.GET("/:id", userHandler.Show)
		users.GET("/:id/edit", userHandler.Edit)
		users.PUT("/:id", userHandler.Update)
		users.POST("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Destroy)
		users.POST("/:id/delete", userHandler.Destroy)
	}

	return r, userService
}

// performRequest runs one request through the router, replaying and
// capturing cookies so flash messages survive redirects.
func performRequest(r *gin.Engine, cookies *[]*http.Cookie, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	for _, ck := range *cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		*cookies = set
	}
	return w
}
