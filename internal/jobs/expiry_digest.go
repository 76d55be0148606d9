// Package jobs tareas programadas de Cold Stock.
package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// DigestSource calcula el reporte completo de vencimientos de una organización.
type DigestSource interface {
	ExpiryDigest(ctx context.Context, organizationID, locale string) (*dto.ExpiryRiskDTO, error)
}

// KeyFunc arma la clave de archivo del reporte de una organización para un día.
type KeyFunc func(organizationID string, day time.Time) string

// ExpiryDigest recorre las organizaciones y envía a sus administradores el resumen de lotes por vencer.
type ExpiryDigest struct {
	orgRepo     repository.OrganizationRepository
	profileRepo repository.ProfileRepository
	source      DigestSource
	mailer      ports.Mailer
	renderer    ports.ExpiryReportRenderer
	archive     ports.ReportArchive // opcional
	archiveKey  KeyFunc
	locale      string
	log         zerolog.Logger
	now         func() time.Time
}

// DigestDeps dependencias del job. Archive y ArchiveKey pueden ir vacíos.
type DigestDeps struct {
	Organizations repository.OrganizationRepository
	Profiles      repository.ProfileRepository
	Source        DigestSource
	Mailer        ports.Mailer
	Renderer      ports.ExpiryReportRenderer
	Archive       ports.ReportArchive
	ArchiveKey    KeyFunc
	Locale        string
}

// NewExpiryDigest construye el job.
func NewExpiryDigest(deps DigestDeps, log zerolog.Logger) *ExpiryDigest {
	return &ExpiryDigest{
		orgRepo:     deps.Organizations,
		profileRepo: deps.Profiles,
		source:      deps.Source,
		mailer:      deps.Mailer,
		renderer:    deps.Renderer,
		archive:     deps.Archive,
		archiveKey:  deps.ArchiveKey,
		locale:      deps.Locale,
		log:         log,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (j *ExpiryDigest) WithClock(now func() time.Time) *ExpiryDigest {
	j.now = now
	return j
}

// DigestResult resumen de una corrida.
type DigestResult struct {
	Organizations int
	Notified      int
	Archived      int
	Failed        int
}

// Run procesa todas las organizaciones. Un fallo en una organización no detiene las demás;
// los errores se acumulan y se devuelven juntos.
func (j *ExpiryDigest) Run(ctx context.Context) (DigestResult, error) {
	var res DigestResult
	orgs, err := j.orgRepo.List(ctx)
	if err != nil {
		return res, fmt.Errorf("jobs.ExpiryDigest: organizaciones: %w", err)
	}
	res.Organizations = len(orgs)

	var errs []error
	for _, org := range orgs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		notified, archived, err := j.processOrganization(ctx, org)
		if err != nil {
			res.Failed++
			errs = append(errs, fmt.Errorf("organización %s: %w", org.ID, err))
			j.log.Error().Err(err).Str("organization_id", org.ID).Msg("digest de vencimientos falló")
			continue
		}
		if notified {
			res.Notified++
		}
		if archived {
			res.Archived++
		}
	}

	j.log.Info().
		Int("organizations", res.Organizations).
		Int("notified", res.Notified).
		Int("archived", res.Archived).
		Int("failed", res.Failed).
		Msg("digest de vencimientos completado")
	return res, errors.Join(errs...)
}

func (j *ExpiryDigest) processOrganization(ctx context.Context, org *entity.Organization) (notified, archived bool, err error) {
	report, err := j.source.ExpiryDigest(ctx, org.ID, j.locale)
	if err != nil {
		return false, false, err
	}
	if report.NearTermCount == 0 {
		return false, false, nil
	}

	admins, err := j.profileRepo.ListByOrganization(ctx, org.ID, entity.RoleAdmin)
	if err != nil {
		return false, false, fmt.Errorf("administradores: %w", err)
	}
	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		if a.Email != "" {
			recipients = append(recipients, a.Email)
		}
	}

	now := j.now()
	pdf, err := j.renderer.RenderExpiryReport(org.Name, now, report)
	if err != nil {
		return false, false, fmt.Errorf("pdf: %w", err)
	}

	if j.archive != nil && j.archiveKey != nil {
		loc, err := j.archive.Put(ctx, j.archiveKey(org.ID, now), "application/pdf", bytes.NewReader(pdf), int64(len(pdf)))
		if err != nil {
			j.log.Warn().Err(err).Str("organization_id", org.ID).Msg("no se pudo archivar el reporte")
		} else {
			archived = true
			j.log.Debug().Str("location", loc).Msg("reporte archivado")
		}
	}

	if len(recipients) == 0 {
		j.log.Warn().Str("organization_id", org.ID).Msg("organización sin administradores para el digest")
		return false, archived, nil
	}

	msg := ports.MailMessage{
		To:      recipients,
		Subject: fmt.Sprintf("Cold Stock: %d lotes próximos a vencer", report.NearTermCount),
		Body:    DigestBody(org.Name, report),
		Attachments: []ports.Attachment{{
			Name:        "vencimientos-" + now.Format("2006-01-02") + ".pdf",
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
	if err := j.mailer.Send(ctx, msg); err != nil {
		return false, archived, fmt.Errorf("correo: %w", err)
	}
	return true, archived, nil
}

// DigestBody texto plano del correo: contadores y una línea por lote.
func DigestBody(organizationName string, report *dto.ExpiryRiskDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola equipo de %s,\n\n", organizationName)
	fmt.Fprintf(&b, "Críticos: %d\nPróximos a vencer: %d\nVencidos: %d\n\n",
		report.CriticalCount, report.NearTermCount, report.ExpiredCount)
	for _, it := range report.Items {
		fmt.Fprintf(&b, "- %s: %d unidades, vence %s (%d días)\n",
			it.ProductName, it.Quantity, it.ExpirationDate, it.DaysUntilExpiry)
	}
	b.WriteString("\nEl reporte completo va adjunto en PDF.\n")
	return b.String()
}
