package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	_ "pereval/docs"
	"pereval/internal/config"
	"pereval/internal/database"
	"pereval/internal/handlers"
	"pereval/internal/logger"
	"pereval/internal/middleware"
	"pereval/internal/pdf"
	"pereval/internal/repositories"
	"pereval/internal/routes"
	"pereval/internal/services"
)

// Run поднимает сервис и блокируется до отмены ctx, после чего мягко гасит HTTP-сервер.
func Run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Log)

	// === DB ===
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("close db")
		}
	}()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("database connected")

	// === Repos / Services ===
	perevalRepo := repositories.NewPerevalRepository(db)
	cards := pdf.NewCardGenerator(cfg.PDF.FontPath)
	perevalService := services.NewPerevalService(perevalRepo, cards, log, cfg.Server.NotifyTimeout, notifiers(cfg, log)...)

	// === Handlers ===
	if err := handlers.RegisterValidators(); err != nil {
		return err
	}
	perevalHandler := handlers.NewPerevalHandler(perevalService)
	healthHandler := handlers.NewHealthHandler(db)

	// === Gin ===
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		middleware.GetLogger(c).Error().Interface("panic", rec).Msg("recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}))
	router.Use(middleware.CORS())
	router.Use(maxBody(cfg.Server.MaxBodyBytes))

	routes.SetupRoutes(router, perevalHandler, healthHandler)

	// === Run ===
	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// notifiers включает только то, что настроено; сбой Telegram на старте не роняет сервис.
func notifiers(cfg *config.Config, log zerolog.Logger) []services.Notifier {
	var out []services.Notifier
	if cfg.Email.SMTPHost != "" {
		out = append(out, services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		))
		log.Info().Str("smtp_host", cfg.Email.SMTPHost).Msg("email receipts enabled")
	}
	if cfg.Telegram.Token != "" {
		tg, err := services.NewTelegramService(cfg.Telegram.Token, cfg.Telegram.ChatID, cfg.Telegram.Timeout)
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifications disabled")
		} else {
			out = append(out, tg)
			log.Info().Int64("chat_id", cfg.Telegram.ChatID).Msg("telegram notifications enabled")
		}
	}
	return out
}

// maxBody ограничивает размер тела: фото приходят в base64 прямо в JSON.
func maxBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

