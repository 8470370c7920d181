package routes

import (
	"profile-manager/internal/delivery/http/handler"
	"profile-manager/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	profiles *handler.ProfileHandler
	ws       *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, profiles *handler.ProfileHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, profiles: profiles, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.profiles)
}
