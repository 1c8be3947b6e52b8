package loader_test

import (
	"errors"
	"testing"

	"lab-inventory/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("SkipsDisabled", func(t *testing.T) {
		mgr := loader.NewManager()
		on := &stubFeature{name: "on", enabled: true}
		off := &stubFeature{name: "off", enabled: false}
		mgr.Register(on)
		mgr.Register(off)

		assert.NoError(t, mgr.LoadAll(app))
		assert.True(t, on.loaded)
		assert.False(t, off.loaded)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		mgr := loader.NewManager()
		bad := &stubFeature{name: "bad", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}
		mgr.Register(bad)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad")
		assert.False(t, after.loaded)
	})
}
