package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/lilnaht/bidFlow/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de rutas
// ──────────────────────────────────────────────────────────────────────────────

// Las rutas del link público viven bajo /api/public/quotes, no en la raíz.
func TestRouter_RutasPublicasBajoAPI(t *testing.T) {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{})

	registered := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		registered[r.Method+" "+r.Path] = true
	}

	assert.True(t, registered["GET /api/public/quotes/:token"],
		"la página pública debe colgar de /api")
	assert.True(t, registered["POST /api/public/quotes/:token/respond"])
	assert.True(t, registered["POST /api/public/quotes/:token/events"])
	assert.False(t, registered["GET /public/quotes/:token"],
		"no debe quedar la variante vieja en la raíz")
}
