package web

import (
	"crypto/sha256"
	"embed"
	"encoding/base64"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"weather-dashboard/internal/settings"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/weatherapi"
)

//go:embed views
var viewsFS embed.FS

// Server bundles the dependencies of the dashboard handlers.
type Server struct {
	client   *weatherapi.Client
	repo     store.LocationRepository
	settings *settings.Store
	secret   string
	log      *zap.SugaredLogger
}

func NewServer(client *weatherapi.Client, repo store.LocationRepository, settingsStore *settings.Store, secret string, log *zap.SugaredLogger) *Server {
	return &Server{
		client:   client,
		repo:     repo,
		settings: settingsStore,
		secret:   secret,
		log:      log,
	}
}

// App builds the Fiber application with middleware, templates and all
// dashboard routes registered.
func (s *Server) App() *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err) // embed layout broken at build time
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          15 * time.Second,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          s.errorHandler,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cookieKey(s.secret),
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	s.registerRoutes(app)
	return app
}

// cookieKey derives the 32-byte key encryptcookie expects from the
// configured secret.
func cookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// errorHandler renders API errors as JSON and page errors as HTML.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/health") {
		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Error",
		"Code":    code,
		"Message": err.Error(),
	})
}
