package routes

import (
	"profile-manager/internal/delivery/http/handler"
	v1 "profile-manager/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, profiles *handler.ProfileHandler) {
	if r == nil {
		return
	}

	v1.RegisterProfiles(r, profiles)
}
