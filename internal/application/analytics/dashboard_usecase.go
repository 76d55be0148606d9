// Package analytics contiene los casos de uso del dashboard de inventario: carga las filas
// de la organización en paralelo y delega el cálculo en el agregador de dominio.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
	agg "github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/repository"
)

// Vistas del dashboard (última parte de ViewKey).
const (
	ViewSeries     = "series"
	ViewSnapshot   = "snapshot"
	ViewHistory    = "history"
	ViewTrajectory = "trajectory"
	ViewRanking    = "ranking"
	ViewExpiry     = "expiry"
	ViewSummary    = "summary"
)

const defaultWindowDays = 30

// Settings parámetros del agregador (ver config.AnalyticsConfig).
type Settings struct {
	Zone            agg.Zone
	DefaultLocale   string
	CriticalDays    int
	NearTermDays    int
	RankingSize     int
	SnapshotLimit   int
	NameBudget      int
	HistoryProducts int
	CacheTTL        time.Duration
}

// DashboardUseCase arma las vistas del dashboard de una organización.
//
// Cada vista se refresca bajo una generación del Board: si el mismo usuario pide otra vez
// la misma vista antes de que termine la anterior, la anterior se cancela y su resultado
// se descarta.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	lotRepo      repository.LotRepository
	stockRepo    repository.StockRepository
	profileRepo  repository.ProfileRepository
	board        *Board
	cache        ResultCache
	settings     Settings
	now          func() time.Time
	log          zerolog.Logger
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	lotRepo repository.LotRepository,
	stockRepo repository.StockRepository,
	profileRepo repository.ProfileRepository,
	settings Settings,
	cache ResultCache,
) *DashboardUseCase {
	if cache == nil {
		cache = NopCache{}
	}
	return &DashboardUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		lotRepo:      lotRepo,
		stockRepo:    stockRepo,
		profileRepo:  profileRepo,
		board:        NewBoard(),
		cache:        cache,
		settings:     settings,
		now:          time.Now,
		log:          zerolog.Nop(),
	}
}

// WithLogger logger para los fallos de la caché, que no interrumpen la vista.
func (uc *DashboardUseCase) WithLogger(log zerolog.Logger) *DashboardUseCase {
	uc.log = log
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// Board expone el tablero de resultados publicados.
func (uc *DashboardUseCase) Board() *Board { return uc.board }

// Latest último resultado publicado de una vista del usuario.
func (uc *DashboardUseCase) Latest(organizationID, userID, view string) (any, bool) {
	return uc.board.Latest(ViewKey(organizationID, userID, view))
}

// ── Serie por período ─────────────────────────────────────────────────────────

// MovementSeries agrupa entradas y salidas del rango por día, semana, mes o año.
func (uc *DashboardUseCase) MovementSeries(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.MovementSeriesDTO, error) {
	g, err := agg.ParseGranularity(req.Granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	r := uc.resolveRange(req)

	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewSeries), func(ctx context.Context) (*dto.MovementSeriesDTO, error) {
		out, err := uc.series(ctx, organizationID, g, r, req.Locale)
		if err != nil {
			return nil, fmt.Errorf("analytics.MovementSeries: %w", err)
		}
		return out, nil
	})
}

// SeriesReport calcula la misma serie sin pasar por el tablero (exportaciones).
func (uc *DashboardUseCase) SeriesReport(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.MovementSeriesDTO, error) {
	g, err := agg.ParseGranularity(req.Granularity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out, err := uc.series(ctx, organizationID, g, uc.resolveRange(req), req.Locale)
	if err != nil {
		return nil, fmt.Errorf("analytics.SeriesReport: %w", err)
	}
	return out, nil
}

func (uc *DashboardUseCase) series(ctx context.Context, organizationID string, g agg.Granularity, r agg.Range, locale string) (*dto.MovementSeriesDTO, error) {
	movs, err := uc.movementsIn(ctx, organizationID, "", r)
	if err != nil {
		return nil, err
	}
	buckets := agg.BucketMovements(movs, r, g, agg.BucketOptions{FormatOptions: uc.format(locale), SkipEmpty: true})
	return toSeriesDTO(g, r, buckets), nil
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockSnapshot stock actual de los primeros productos del catálogo.
func (uc *DashboardUseCase) StockSnapshot(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.StockSnapshotDTO, error) {
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewSnapshot), func(ctx context.Context) (*dto.StockSnapshotDTO, error) {
		productsCh := fetch(func() ([]entity.Product, error) { return uc.productRepo.ListByOrganization(ctx, organizationID) })
		levelsCh := fetch(func() ([]entity.StockLevel, error) { return uc.stockRepo.ListByOrganization(ctx, organizationID) })

		products, levels := <-productsCh, <-levelsCh
		if products.err != nil {
			return nil, fmt.Errorf("analytics.StockSnapshot: productos: %w", products.err)
		}
		if levels.err != nil {
			return nil, fmt.Errorf("analytics.StockSnapshot: stock: %w", levels.err)
		}

		entries := agg.Snapshot(products.val, levels.val, agg.SnapshotOptions{
			Limit:      uc.settings.SnapshotLimit,
			NameBudget: uc.settings.NameBudget,
		})
		return toSnapshotDTO(entries), nil
	})
}

// StockHistory variación neta diaria de los primeros productos del catálogo.
func (uc *DashboardUseCase) StockHistory(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.StockHistoryDTO, error) {
	r := uc.resolveRange(req)
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewHistory), func(ctx context.Context) (*dto.StockHistoryDTO, error) {
		productsCh := fetch(func() ([]entity.Product, error) { return uc.productRepo.ListByOrganization(ctx, organizationID) })
		movsCh := fetch(func() ([]entity.Movement, error) { return uc.movementsIn(ctx, organizationID, "", r) })

		products, movs := <-productsCh, <-movsCh
		if products.err != nil {
			return nil, fmt.Errorf("analytics.StockHistory: productos: %w", products.err)
		}
		if movs.err != nil {
			return nil, fmt.Errorf("analytics.StockHistory: movimientos: %w", movs.err)
		}

		opts := agg.HistoryOptions{FormatOptions: uc.format(req.Locale), Products: uc.settings.HistoryProducts}
		rows := agg.StockHistory(movs.val, products.val, r, opts)
		tracked := products.val[:min(historyProducts(opts.Products), len(products.val))]
		return toHistoryDTO(tracked, rows), nil
	})
}

// ProductTrajectory curva de stock acumulado de un producto en el rango.
func (uc *DashboardUseCase) ProductTrajectory(ctx context.Context, organizationID, productID string, req dto.AnalyticsRequest) (*dto.TrajectoryDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	r := uc.resolveRange(req)
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewTrajectory), func(ctx context.Context) (*dto.TrajectoryDTO, error) {
		productCh := fetch(func() (*entity.Product, error) { return uc.productRepo.GetByID(ctx, productID) })
		movsCh := fetch(func() ([]entity.Movement, error) { return uc.movementsIn(ctx, organizationID, productID, r) })

		product, movs := <-productCh, <-movsCh
		if product.err != nil {
			return nil, fmt.Errorf("analytics.ProductTrajectory: producto: %w", product.err)
		}
		if product.val == nil || product.val.OrganizationID != organizationID {
			return nil, domain.ErrNotFound
		}
		if movs.err != nil {
			return nil, fmt.Errorf("analytics.ProductTrajectory: movimientos: %w", movs.err)
		}

		points := agg.Trajectory(movs.val, productID, r, uc.format(req.Locale))
		return toTrajectoryDTO(product.val, points), nil
	})
}

// ── Ranking ───────────────────────────────────────────────────────────────────

// ActivityRanking productos con más y menos movimiento en el rango.
func (uc *DashboardUseCase) ActivityRanking(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.ActivityRankingDTO, error) {
	r := uc.resolveRange(req)
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewRanking), func(ctx context.Context) (*dto.ActivityRankingDTO, error) {
		productsCh := fetch(func() ([]entity.Product, error) { return uc.productRepo.ListByOrganization(ctx, organizationID) })
		movsCh := fetch(func() ([]entity.Movement, error) { return uc.movementsIn(ctx, organizationID, "", r) })

		products, movs := <-productsCh, <-movsCh
		if products.err != nil {
			return nil, fmt.Errorf("analytics.ActivityRanking: productos: %w", products.err)
		}
		if movs.err != nil {
			return nil, fmt.Errorf("analytics.ActivityRanking: movimientos: %w", movs.err)
		}

		ranking := agg.RankActivity(movs.val, products.val, r, agg.RankingOptions{
			FormatOptions: uc.format(req.Locale),
			N:             uc.settings.RankingSize,
			NameBudget:    uc.settings.NameBudget,
		})
		return toRankingDTO(ranking), nil
	})
}

// ── Vencimientos ──────────────────────────────────────────────────────────────

// ExpiryRisk lotes próximos a vencer con la ventana visible de req.Visible (default 5).
func (uc *DashboardUseCase) ExpiryRisk(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.ExpiryRiskDTO, error) {
	visible := req.Visible
	if visible <= 0 {
		visible = agg.DefaultPageStep
	}
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewExpiry), func(ctx context.Context) (*dto.ExpiryRiskDTO, error) {
		report, err := uc.assessExpiry(ctx, organizationID, req.Locale)
		if err != nil {
			return nil, fmt.Errorf("analytics.ExpiryRisk: %w", err)
		}
		return toExpiryDTO(report, visible), nil
	})
}

// ExpiryDigest reporte completo de vencimientos, sin ventana ni generación (jobs y reportes).
func (uc *DashboardUseCase) ExpiryDigest(ctx context.Context, organizationID, locale string) (*dto.ExpiryRiskDTO, error) {
	report, err := uc.assessExpiry(ctx, organizationID, locale)
	if err != nil {
		return nil, fmt.Errorf("analytics.ExpiryDigest: %w", err)
	}
	return toExpiryDTO(report, len(report.Items)), nil
}

func (uc *DashboardUseCase) assessExpiry(ctx context.Context, organizationID, locale string) (agg.ExpiryReport, error) {
	lotsCh := fetch(func() ([]entity.Lot, error) { return uc.lotRepo.ListByOrganization(ctx, organizationID) })
	productsCh := fetch(func() ([]entity.Product, error) { return uc.productRepo.ListByOrganization(ctx, organizationID) })

	lots, products := <-lotsCh, <-productsCh
	if lots.err != nil {
		return agg.ExpiryReport{}, fmt.Errorf("lotes: %w", lots.err)
	}
	if products.err != nil {
		return agg.ExpiryReport{}, fmt.Errorf("productos: %w", products.err)
	}
	return agg.AssessExpiry(lots.val, products.val, uc.now(), uc.expiryOptions(locale)), nil
}

// ── Resumen ───────────────────────────────────────────────────────────────────

// Summary tarjetas de resumen: productos, operarios, stock total, lotes por vencer y
// movimientos de hoy. Se cachea por organización durante Settings.CacheTTL.
func (uc *DashboardUseCase) Summary(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.DashboardSummaryDTO, error) {
	return Refresh(ctx, uc.board, ViewKey(organizationID, req.UserID, ViewSummary), func(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
		key := CacheKey(organizationID, ViewSummary)
		var cached dto.DashboardSummaryDTO
		found, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			uc.log.Warn().Err(err).Str("organization_id", organizationID).Str("key", key).Msg("no se pudo leer la caché del dashboard")
		} else if found {
			return &cached, nil
		}

		now := uc.now()
		today := uc.settings.Zone.Today(now)

		productsCh := fetch(func() ([]entity.Product, error) { return uc.productRepo.ListByOrganization(ctx, organizationID) })
		operatorsCh := fetch(func() (int, error) { return uc.profileRepo.CountByRole(ctx, organizationID, entity.RoleOperator) })
		levelsCh := fetch(func() ([]entity.StockLevel, error) { return uc.stockRepo.ListByOrganization(ctx, organizationID) })
		lotsCh := fetch(func() ([]entity.Lot, error) { return uc.lotRepo.ListByOrganization(ctx, organizationID) })
		movsCh := fetch(func() ([]entity.Movement, error) {
			return uc.movementRepo.List(ctx, repository.MovementFilter{OrganizationID: organizationID, From: &today})
		})

		products, operators, levels, lots, movs := <-productsCh, <-operatorsCh, <-levelsCh, <-lotsCh, <-movsCh
		if err := errors.Join(products.err, operators.err, levels.err, lots.err, movs.err); err != nil {
			return nil, fmt.Errorf("analytics.Summary: %w", err)
		}

		s := agg.Summarize(agg.SummaryInput{
			Products:  products.val,
			Operators: operators.val,
			Levels:    levels.val,
			Lots:      lots.val,
			Movements: movs.val,
		}, now, uc.expiryOptions(req.Locale))

		out := &dto.DashboardSummaryDTO{
			TotalProducts:  s.TotalProducts,
			TotalOperators: s.TotalOperators,
			TotalStock:     s.TotalStock,
			ExpiringSoon:   s.ExpiringSoon,
			CriticalLots:   s.CriticalLots,
			MovementsToday: s.MovementsToday,
			GeneratedAt:    now,
		}
		if err := uc.cache.Set(ctx, key, out, uc.settings.CacheTTL); err != nil {
			uc.log.Warn().Err(err).Str("organization_id", organizationID).Str("key", key).Msg("no se pudo guardar en la caché del dashboard")
		}
		return out, nil
	})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// result resultado de una consulta lanzada en su propia goroutine.
type result[T any] struct {
	val T
	err error
}

// fetch ejecuta fn en una goroutine y entrega el resultado por un canal con buffer 1.
func fetch[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{val: v, err: err}
	}()
	return ch
}

func (uc *DashboardUseCase) format(locale string) agg.FormatOptions {
	if locale == "" {
		locale = uc.settings.DefaultLocale
	}
	return agg.FormatOptions{Zone: uc.settings.Zone, Locale: agg.LocaleFor(locale)}
}

func (uc *DashboardUseCase) expiryOptions(locale string) agg.ExpiryOptions {
	return agg.ExpiryOptions{
		FormatOptions: uc.format(locale),
		CriticalDays:  uc.settings.CriticalDays,
		NearTermDays:  uc.settings.NearTermDays,
	}
}

// resolveRange completa las fechas faltantes: To = hoy, From = To - 29 días.
func (uc *DashboardUseCase) resolveRange(req dto.AnalyticsRequest) agg.Range {
	to := req.To
	if to.IsZero() {
		to = uc.settings.Zone.Today(uc.now())
	}
	from := req.From
	if from.IsZero() {
		from = uc.settings.Zone.CalendarDay(to).AddDate(0, 0, -(defaultWindowDays - 1))
	}
	return agg.NewRange(from, to)
}

// movementsIn carga los movimientos del rango (ascendentes). Un rango vacío no consulta la DB.
func (uc *DashboardUseCase) movementsIn(ctx context.Context, organizationID, productID string, r agg.Range) ([]entity.Movement, error) {
	start, end, ok := r.Bounds(uc.settings.Zone)
	if !ok {
		return []entity.Movement{}, nil
	}
	return uc.movementRepo.List(ctx, repository.MovementFilter{
		OrganizationID: organizationID,
		ProductID:      productID,
		From:           &start,
		To:             &end,
	})
}

func historyProducts(n int) int {
	if n <= 0 {
		return agg.DefaultHistoryProducts
	}
	return n
}
