package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/fonceappsupa-gif/cold-stock-blue/docs"
	appanalytics "github.com/fonceappsupa-gif/cold-stock-blue/internal/application/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/auth"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/contact"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/inventory"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/usecase"
	agg "github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	infracache "github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/cache"
	infraexcel "github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/excel"
	inframail "github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/mail"
	infrapdf "github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/pdf"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/postgres"
	infrastorage "github.com/fonceappsupa-gif/cold-stock-blue/internal/infrastructure/storage"
	httpRouter "github.com/fonceappsupa-gif/cold-stock-blue/internal/interfaces/http"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/jobs"
	"github.com/fonceappsupa-gif/cold-stock-blue/pkg/config"
	"github.com/fonceappsupa-gif/cold-stock-blue/pkg/logger"
)

// @title                       Cold Stock API
// @version                     1.0
// @description                 API de inventario de cadena de frío: lotes, movimientos y dashboard analítico por organización.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Token JWT con prefijo Bearer.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	zone, err := agg.ParseZone(cfg.Analytics.UTCOffset)
	if err != nil {
		log.Fatal().Err(err).Str("offset", cfg.Analytics.UTCOffset).Msg("ANALYTICS_UTC_OFFSET inválido")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de vistas del dashboard: Redis si está configurado, si no ninguna.
	var resultCache appanalytics.ResultCache = appanalytics.NopCache{}
	if cfg.Redis.Enabled() {
		rdb, err := infracache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, dashboard sin caché")
		} else {
			defer rdb.Close()
			resultCache = infracache.NewRedisCache(rdb)
		}
	}

	// Correo: SMTP o log en su defecto.
	var mailer ports.Mailer = inframail.NewLogMailer(log.Component("mail").Zerolog())
	if cfg.SMTP.Enabled() {
		mailer = inframail.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	// Archivo de reportes (opcional).
	var archive ports.ReportArchive
	if cfg.Storage.Enabled() {
		a, err := infrastorage.NewMinioArchive(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
		if err == nil {
			err = a.EnsureBucket(ctx)
		}
		if err != nil {
			log.Warn().Err(err).Msg("almacenamiento de reportes deshabilitado")
		} else {
			archive = a
		}
	}

	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo, lotRepo, stockRepo, profileRepo, appanalytics.Settings{
		Zone:            zone,
		DefaultLocale:   cfg.Analytics.DefaultLocale,
		CriticalDays:    cfg.Analytics.CriticalDays,
		NearTermDays:    cfg.Analytics.NearTermDays,
		RankingSize:     cfg.Analytics.RankingSize,
		SnapshotLimit:   cfg.Analytics.SnapshotLimit,
		NameBudget:      cfg.Analytics.NameBudget,
		HistoryProducts: cfg.Analytics.HistoryProducts,
		CacheTTL:        cfg.Analytics.CacheTTL,
	}, resultCache).WithLogger(log.Component("analytics").Zerolog())

	movementUC := inventory.NewMovementUseCase(txRunner, productRepo, movementRepo, resultCache, log.Component("inventory").Zerolog()).
		WithRecentLimit(cfg.Analytics.RecentLimit).
		WithDefaultLocale(cfg.Analytics.DefaultLocale)
	catalogUC := inventory.NewCatalogUseCase(productRepo, lotRepo, resultCache, log.Component("inventory").Zerolog())
	authUC := auth.NewAuthUseCase(txRunner, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orgUC := usecase.NewOrganizationUseCase(orgRepo)
	operatorUC := usecase.NewOperatorUseCase(profileRepo, resultCache, log.Component("operators").Zerolog())
	contactUC := contact.NewUseCase(mailer, cfg.Contact.AdminEmail, log.Component("contact").Zerolog())

	pdfRenderer := infrapdf.NewMarotoReportGenerator()

	// Digest diario de vencimientos
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		digest := jobs.NewExpiryDigest(jobs.DigestDeps{
			Organizations: orgRepo,
			Profiles:      profileRepo,
			Source:        dashboardUC,
			Mailer:        mailer,
			Renderer:      pdfRenderer,
			Archive:       archive,
			ArchiveKey:    infrastorage.ExpiryReportKey,
			Locale:        cfg.Analytics.DefaultLocale,
		}, log.Component("jobs").Zerolog())
		scheduler, err = jobs.NewScheduler(cfg.Jobs.ExpiryDigestAt, zone.Location(), digest, log.Component("jobs").Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("scheduler de jobs")
		}
		scheduler.Start()
	}

	contactLimiter := httpRouter.NewIPRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst)
	go contactLimiter.RunCleanup(ctx, 10*time.Minute)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http").Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cold Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "zone": zone.String()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Organization: orgUC,
		Operators:    operatorUC,
		Catalog:      catalogUC,
		Movements:    movementUC,
		Dashboard:    dashboardUC,
		Reports:      dashboardUC,
		PDF:          pdfRenderer,
		XLSX:         infraexcel.NewSeriesExporter(),
		Contact:      contactUC,
		ContactLimit: contactLimiter,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if scheduler != nil {
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("apagado del scheduler")
		}
	}

	log.Info().Msg("aplicación detenida")
}
