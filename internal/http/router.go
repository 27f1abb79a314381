package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "portfolio/backend/docs"
	"portfolio/backend/internal/handler"
	"portfolio/backend/internal/service"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth        *handler.AuthHandler
	Projects    *handler.ProjectHandler
	Experiences *handler.ExperienceHandler
	Education   *handler.EducationHandler
	Contacts    *handler.ContactHandler
	Upload      *handler.UploadHandler
	Admin       *handler.AdminHandler
}

// Options configures cross-cutting router behavior.
type Options struct {
	StaticDir   string
	FrontendURL string
	// ContactRate is the number of contact submissions allowed per client IP
	// per minute. Zero disables the limit.
	ContactRate int
}

// maxBodySize leaves headroom over the 5MB image limit for multipart framing.
const maxBodySize = "6M"

const imageUploadPath = "/api/upload/image"

func NewRouter(authService service.AuthService, h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(BodyLimitMiddleware(maxBodySize))
	if opts.FrontendURL != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  []string{opts.FrontendURL},
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, "Accept-Language"},
			ExposeHeaders: []string{"Content-Language"},
		}))
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", LanguageMiddleware())
	h.Auth.RegisterPublicRoutes(api)
	h.Projects.RegisterPublicRoutes(api)
	h.Experiences.RegisterPublicRoutes(api)
	h.Education.RegisterPublicRoutes(api)
	var contactLimits []echo.MiddlewareFunc
	if opts.ContactRate > 0 {
		contactLimits = append(contactLimits, ContactRateLimitMiddleware(opts.ContactRate))
	}
	h.Contacts.RegisterPublicRoutes(api, contactLimits...)

	protected := api.Group("", JWTAuthMiddleware(authService))
	h.Auth.RegisterProtectedRoutes(protected)
	h.Projects.RegisterProtectedRoutes(protected)
	h.Experiences.RegisterProtectedRoutes(protected)
	h.Education.RegisterProtectedRoutes(protected)
	h.Contacts.RegisterProtectedRoutes(protected)
	h.Upload.RegisterRoutes(protected)
	h.Admin.RegisterRoutes(protected)

	registerStatic(e, opts.StaticDir)

	return e
}
