// Package logger arma el logger estructurado del servicio sobre zerolog.
// En development escribe consola legible; en cualquier otro entorno, JSON
// por línea apto para agregadores.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env   string // "development" activa la salida de consola
	Level string // debug, info, warn, error (default: info)
}

// Logger envuelve zerolog para inyectarlo por constructor en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	zl := zerolog.New(w).Level(nivel(cfg.Level)).With().Timestamp().Logger()

	// Las librerías que escriben al logger global de zerolog salen por la
	// misma tubería.
	log.Logger = zl

	return &Logger{zl: zl}
}

func nivel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
