// Package logger arma el logger zerolog del servicio: consola legible en
// development, JSON por línea en cualquier otro entorno.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controla destino y nivel mínimo del logger.
type Config struct {
	Env   string // "development" activa la salida de consola
	Level string // debug, info, warn, error; default info
}

// Logger envuelve zerolog para inyectarlo como una dependencia única en vez
// de usar el global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno. También redirige el logger global
// de zerolog, así las librerías que escriben por log.Logger salen por el
// mismo destino.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(out).
		Level(levelFromString(cfg.Level)).
		With().Timestamp().Logger()

	log.Logger = zl

	return &Logger{zl: zl}
}

// levelFromString mapea el nivel configurado; un valor desconocido o vacío
// cae en info.
func levelFromString(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Eventos por nivel, delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog expone el logger interno cuando hace falta la API directa.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
