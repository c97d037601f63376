package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"creditwatch/internal/config"
	"creditwatch/internal/email/noop"
	"creditwatch/internal/email/ses"
	"creditwatch/internal/handler"
	"creditwatch/internal/port"
	"creditwatch/internal/reminder"
	"creditwatch/internal/repository/postgres"
	"creditwatch/internal/router"
	"creditwatch/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)

	// Initialize email delivery
	emailSender, err := newEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	composer := reminder.Composer{
		CountryCode:  cfg.Reminder.CountryCode,
		BusinessName: cfg.Reminder.BusinessName,
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo, invoiceRepo, time.Now)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, time.Now)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo, time.Now)
	dashboardSvc := service.NewDashboardService(clientRepo, invoiceRepo, paymentRepo, time.Now)
	reportSvc := service.NewReportService(invoiceRepo, paymentRepo, time.Now)
	reminderSvc := service.NewReminderService(clientRepo, invoiceRepo, composer, emailSender, time.Now)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	clientH := handler.NewClientHandler(clientSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, cfg.Import.MaxUploadMB)
	paymentH := handler.NewPaymentHandler(paymentSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportH := handler.NewReportHandler(reportSvc)
	reminderH := handler.NewReminderHandler(reminderSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, clientH, invoiceH, paymentH, dashboardH, reportH, reminderH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

func newEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName)
	case "noop", "":
		return noop.NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
