package jobs_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agg "github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/jobs"
)

func TestParseDailyAt(t *testing.T) {
	h, m, err := jobs.ParseDailyAt("07:30")
	require.NoError(t, err)
	assert.Equal(t, uint(7), h)
	assert.Equal(t, uint(30), m)

	for _, bad := range []string{"", "7", "24:00", "07:60", "ab:cd", "0 7 * * *"} {
		_, _, err := jobs.ParseDailyAt(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewScheduler_HoraInvalida(t *testing.T) {
	f := newDigestFixture(t, &fakeSource{})
	_, err := jobs.NewScheduler("no es hora", time.UTC, f.job, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewScheduler_ZonaDeDesfaseFijo(t *testing.T) {
	zone, err := agg.ParseZone("-05:00")
	require.NoError(t, err)
	f := newDigestFixture(t, &fakeSource{})

	s, err := jobs.NewScheduler("07:00", zone.Location(), f.job, zerolog.Nop())
	require.NoError(t, err)
	s.Start()
	defer func() { assert.NoError(t, s.Stop()) }()

	next, err := s.NextRun()
	require.NoError(t, err)
	local := next.In(zone.Location())
	assert.Equal(t, 7, local.Hour())
	assert.Equal(t, 0, local.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestNewScheduler_StartStopUTC(t *testing.T) {
	zone, err := agg.ParseZone("+00:00")
	require.NoError(t, err)
	f := newDigestFixture(t, &fakeSource{})

	s, err := jobs.NewScheduler("23:59", zone.Location(), f.job, zerolog.Nop())
	require.NoError(t, err)
	s.Start()
	assert.NoError(t, s.Stop())
}
