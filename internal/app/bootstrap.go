package app

import (
	"fmt"
	"strings"

	"mutual-book/internal/config"
	"mutual-book/internal/delivery/http/handler"
	"mutual-book/internal/delivery/http/middleware"
	"mutual-book/internal/delivery/http/routes"
	"mutual-book/internal/delivery/web"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v2"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	engine := html.New("./views", ".html")

	f := fiber.New(fiber.Config{
		AppName: "mutual-book",
		Views:   engine,
	})

	registerGlobalMiddleware(f)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(nil).Middleware())
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	var pinger handler.Pinger
	if c.DB != nil {
		pinger = c.DB
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(pinger),
		handler.NewFunnelHandler(c.Funnel),
	)
	registry.Register(app)

	web.NewHandler(c.Funnel).RegisterRoutes(app)
	app.Use("/static", static.New("./static"))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
