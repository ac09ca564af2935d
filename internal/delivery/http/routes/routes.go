package routes

import (
	"mutual-book/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	funnel *handler.FunnelHandler
}

func NewRegistry(health *handler.HealthHandler, funnel *handler.FunnelHandler) *Registry {
	return &Registry{health: health, funnel: funnel}
}

// Register wires the JSON endpoints. The /api paths carry no version
// segment: they are the funnel's public contract.
func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.funnel.RegisterRoutes(app.Group("/api"))
}
