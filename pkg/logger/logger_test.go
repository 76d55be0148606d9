package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fonceappsupa-gif/cold-stock-blue/pkg/logger"
)

func TestNew_Nivel(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: "desconocido"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNop(t *testing.T) {
	l := logger.Nop().Component("jobs")
	assert.NotPanics(t, func() { l.Info().Msg("descartado") })
}
