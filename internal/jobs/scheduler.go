package jobs

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Scheduler agenda el digest de vencimientos con gocron.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       zerolog.Logger
}

// NewScheduler registra el digest una vez al día a la hora at ("HH:MM") de loc.
// loc puede ser una zona de desfase fijo sin nombre IANA: la hora se resuelve sobre loc directamente.
func NewScheduler(at string, loc *time.Location, digest *ExpiryDigest, log zerolog.Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	hour, minute, err := ParseDailyAt(at)
	if err != nil {
		return nil, err
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("jobs: crear scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(func(ctx context.Context) {
			if _, err := digest.Run(ctx); err != nil {
				log.Error().Err(err).Msg("digest de vencimientos terminó con errores")
			}
		}),
		gocron.WithName("expiry-digest"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("jobs: registrar digest (%q): %w", at, err)
	}
	return &Scheduler{scheduler: s, log: log}, nil
}

// ParseDailyAt interpreta "HH:MM" (24 h).
func ParseDailyAt(at string) (hour, minute uint, err error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(at), ":")
	if !ok {
		return 0, 0, fmt.Errorf("jobs: hora %q: se espera HH:MM", at)
	}
	h, errH := strconv.ParseUint(hh, 10, 8)
	m, errM := strconv.ParseUint(mm, 10, 8)
	if errH != nil || errM != nil || h > 23 || m > 59 {
		return 0, 0, fmt.Errorf("jobs: hora %q fuera de rango", at)
	}
	return uint(h), uint(m), nil
}

// NextRun próxima ejecución del digest.
func (s *Scheduler) NextRun() (time.Time, error) {
	jobs := s.scheduler.Jobs()
	if len(jobs) == 0 {
		return time.Time{}, fmt.Errorf("jobs: sin jobs registrados")
	}
	return jobs[0].NextRun()
}

// Start arranca el scheduler.
func (s *Scheduler) Start() {
	s.log.Info().Int("jobs", len(s.scheduler.Jobs())).Msg("iniciando scheduler de jobs")
	s.scheduler.Start()
}

// Stop detiene el scheduler esperando los jobs en curso.
func (s *Scheduler) Stop() error {
	s.log.Info().Msg("deteniendo scheduler de jobs")
	return s.scheduler.Shutdown()
}
