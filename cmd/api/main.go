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

	"github.com/lilnaht/bidFlow/internal/application/auth"
	"github.com/lilnaht/bidFlow/internal/application/quoting"
	"github.com/lilnaht/bidFlow/internal/application/usecase"
	infrapdf "github.com/lilnaht/bidFlow/internal/infrastructure/pdf"
	"github.com/lilnaht/bidFlow/internal/infrastructure/postgres"
	httpRouter "github.com/lilnaht/bidFlow/internal/interfaces/http"
	"github.com/lilnaht/bidFlow/pkg/config"
	"github.com/lilnaht/bidFlow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	versionRepo := postgres.NewQuoteVersionRepository(pool)
	acceptanceRepo := postgres.NewAcceptanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	requestUC := usecase.NewRequestUseCase(requestRepo, clientRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	quoteUC := quoting.NewQuoteUseCase(
		quoteRepo, clientRepo, serviceRepo, txRunner,
		cfg.Quote.PublicLinkDays, cfg.Quote.PublicBaseURL,
	)
	versionUC := quoting.NewVersionUseCase(quoteRepo, versionRepo)
	templateUC := quoting.NewTemplateUseCase(templateRepo, quoteRepo, clientRepo, settingsRepo)
	publicUC := quoting.NewPublicUseCase(quoteRepo, clientRepo, settingsRepo, acceptanceRepo, txRunner)

	// PDF: versión imprimible de la propuesta
	pdfGenerator := infrapdf.NewMarotoQuoteGenerator()
	pdfUC := quoting.NewPDFUseCase(quoteRepo, clientRepo, settingsRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "bidFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:   clientUC,
		RequestUC:  requestUC,
		ServiceUC:  serviceUC,
		SettingsUC: settingsUC,
		QuoteUC:    quoteUC,
		VersionUC:  versionUC,
		TemplateUC: templateUC,
		PublicUC:   publicUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
