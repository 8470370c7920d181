package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessageForStatus(t *testing.T) {
	cases := map[int]string{
		fiber.StatusOK:                  MessageOK,
		fiber.StatusCreated:             MessageCreated,
		fiber.StatusNotFound:            MessageNotFound,
		fiber.StatusConflict:            MessageConflict,
		fiber.StatusTeapot:              MessageError,
		fiber.StatusBadGateway:          MessageInternalServerError,
		fiber.StatusServiceUnavailable:  MessageServiceUnavailable,
		fiber.StatusInternalServerError: MessageInternalServerError,
	}
	for status, want := range cases {
		if got := DefaultMessageForStatus(status); got != want {
			t.Fatalf("status %d: got %q, want %q", status, got, want)
		}
	}
}

func TestSuccess_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Success(c, 42, "", map[string]int{"n": 1})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("invalid status should normalize to 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	var env SemanticResponse
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if env.Status != 500 || env.Message != MessageInternalServerError {
		t.Fatalf("unexpected envelope %+v", env)
	}
}
