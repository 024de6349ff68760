package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilnaht/bidFlow/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Nivel configurado
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_NivelConfigurado(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel}, // case-insensitive
	}
	for _, tc := range cases {
		l := logger.New(logger.Config{Env: "production", Level: tc.level})
		require.NotNil(t, l)
		assert.Equal(t, tc.want, l.Zerolog().GetLevel(), "nivel %q", tc.level)
	}
}

// Un nivel desconocido o vacío cae en info, nunca en un logger mudo.
func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	for _, level := range []string{"", "verbose", "loud"} {
		l := logger.New(logger.Config{Env: "production", Level: level})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", level)
	}
}
