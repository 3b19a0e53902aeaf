package loader_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"mhr-catalog/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
}

func (s stubFeature) Name() string    { return s.name }
func (s stubFeature) IsEnabled() bool { return s.enabled }
func (s stubFeature) Load(app fiber.Router) error {
	if s.err != nil {
		return s.err
	}
	app.Get("/"+s.name, func(c *fiber.Ctx) error { return c.SendString(s.name) })
	return nil
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()
	mgr := loader.NewManager(zap.NewNop())
	mgr.Register(stubFeature{name: "catalog", enabled: true})
	mgr.Register(stubFeature{name: "integrity", enabled: false})

	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	assert.Equal(t, []string{"catalog"}, loaded)
	assert.Len(t, mgr.Features(), 2)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestManager_LoadAllErrors(t *testing.T) {
	t.Run("LoadFailure", func(t *testing.T) {
		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

		_, err := mgr.LoadAll(fiber.New())
		assert.ErrorContains(t, err, "broken")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mgr := loader.NewManager(zap.NewNop())
		mgr.Register(stubFeature{name: "catalog", enabled: true})
		mgr.Register(stubFeature{name: "catalog", enabled: true})

		loaded, err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Equal(t, []string{"catalog"}, loaded)
	})
}
