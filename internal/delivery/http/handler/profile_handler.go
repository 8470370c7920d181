package handler

import (
	"errors"
	"net/url"

	"profile-manager/internal/delivery/http/dto"
	"profile-manager/internal/delivery/http/middleware"
	"profile-manager/internal/domain/profile"
	"profile-manager/internal/pkg/response"
	profileuc "profile-manager/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc profileuc.Client
}

func NewProfileHandler(uc profileuc.Client) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profiles")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:username", h.Get)
	grp.Patch("/:username", h.Update)
	grp.Delete("/:username", h.Delete)
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileListResponse(items))
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), req.ToNewProfile())
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewProfileResponse(created))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	username, err := usernameParam(c)
	if err != nil {
		return err
	}
	p, err := h.uc.GetByUsername(c.Context(), username)
	if err != nil {
		return mapProfileError(err)
	}
	if p == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(*p))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	username, err := usernameParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.Update(c.Context(), username, req.ToPatch())
	if err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(updated))
}

func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	username, err := usernameParam(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), username); err != nil {
		return mapProfileError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageDeleted, nil)
}

// usernameParam returns the decoded :username path segment. Fiber leaves
// path parameters percent-encoded.
func usernameParam(c fiber.Ctx) (string, error) {
	username, err := url.PathUnescape(c.Params("username"))
	if err != nil {
		return "", middleware.NewAppError(fiber.StatusBadRequest, "Invalid username in path", nil, err)
	}
	return username, nil
}

func mapProfileError(err error) error {
	switch {
	case errors.Is(err, profile.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	case errors.Is(err, profile.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, profile.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
