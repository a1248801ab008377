package validators

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string  `json:"name" validate:"required,min=2"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,urlorempty"`
	Level     string  `json:"level" validate:"omitempty,oneof=beginner advanced"`
}

func TestStruct(t *testing.T) {
	blank := ""
	assert.Empty(t, Struct(&sample{Name: "Ada", Thumbnail: &blank}))

	bad := "not a url"
	fields := Struct(&sample{Name: "A", Email: "nope", Thumbnail: &bad, Level: "expert"})
	assert.Equal(t, map[string]string{
		"name":      "name must be at least 2 characters long!",
		"email":     "Invalid email!",
		"thumbnail": "thumbnail must be a valid URL!",
		"level":     "level must be one of beginner, advanced!",
	}, fields)
}

func run(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", Body("validated", func(s *sample) { s.Name = strings.TrimSpace(s.Name) }), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("validated").(*sample))
	})

	status, out := run(t, app, http.MethodPost, "/", `{"name":"  Ada  "}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Ada", out["name"])

	status, out = run(t, app, http.MethodPost, "/", `{"name":" "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed!", out["message"])

	status, out = run(t, app, http.MethodPost, "/", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body!", out["message"])
}

func TestQueryHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", ParamID("id", "itemId"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":     c.Locals("itemId"),
			"limit":  QueryInt(c, "limit", 20, 50),
			"offset": Offset(c),
		})
	})

	status, out := run(t, app, http.MethodGet, "/items/3?limit=500&offset=-2", "")
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, out["id"])
	assert.EqualValues(t, 50, out["limit"])
	assert.EqualValues(t, 0, out["offset"])

	_, out = run(t, app, http.MethodGet, "/items/3?limit=abc", "")
	assert.EqualValues(t, 20, out["limit"])

	status, _ = run(t, app, http.MethodGet, "/items/zero", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
