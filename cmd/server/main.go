package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/email/noop"
	"procura/internal/email/ses"
	"procura/internal/extractor"
	geminiextractor "procura/internal/extractor/gemini"
	openaiextractor "procura/internal/extractor/openai"
	"procura/internal/handler"
	"procura/internal/matching"
	"procura/internal/port"
	"procura/internal/remote/gdrive"
	"procura/internal/remote/oauth"
	"procura/internal/repository/postgres"
	"procura/internal/router"
	"procura/internal/service"
	"procura/internal/sku"
	s3storage "procura/internal/storage/s3"
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
	fileRepo := postgres.NewFileIndexRepo(db)
	syncConfigRepo := postgres.NewSyncConfigRepo(db)
	skuRepo := postgres.NewSkuRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	credentialRepo := postgres.NewCredentialRepo(db)

	// Initialize remote access
	tokenProvider := oauth.NewTokenProvider(credentialRepo, &cfg.Drive)
	driveClient := gdrive.NewClient(&cfg.Drive)

	// Initialize document extraction
	registerExtractorProviders()
	docExtractor, err := buildExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to initialize extractor: %w", err)
	}

	// Initialize scan archive storage (optional)
	var archive port.ObjectStorage
	if cfg.S3.Bucket != "" {
		archive, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	emailSender, err := buildEmailSender(&cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	engine := matching.NewEngine()
	authSvc := service.NewAuthService(cfg.JWT)
	syncSvc := service.NewSyncService(
		tokenProvider, driveClient, fileRepo, syncConfigRepo,
		service.NewSyncGuard(), emailSender, &cfg.Drive,
	)
	skuSvc := service.NewSkuService(
		skuRepo, supplierRepo,
		sku.NewCodeGenerator(), sku.NewKeywordPredicate(),
		cfg.Sku.DefaultCategory, cfg.Sku.CreateBatchSize,
	)
	scanSvc := service.NewScanService(
		tokenProvider, driveClient, docExtractor, engine,
		fileRepo, skuSvc, archive, cfg.S3.Bucket, cfg.S3.PresignExpiry,
	)

	// Initialize handlers
	syncH := handler.NewSyncHandler(syncSvc)
	fileH := handler.NewFileHandler(fileRepo, scanSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, authSvc, syncH, fileH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Sync.Enabled {
		scheduler := service.NewSyncScheduler(syncSvc, service.SyncSchedulerConfig{
			Interval:   time.Duration(cfg.Sync.IntervalMins) * time.Minute,
			Categories: categoriesWithRoots(&cfg.Drive),
		})
		go scheduler.Start(ctx)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func registerExtractorProviders() {
	extractor.RegisterProvider("gemini", func(cfg *config.ExtractorProviderConfig) (port.DocumentExtractor, error) {
		return geminiextractor.NewExtractor(cfg), nil
	})
	extractor.RegisterProvider("openai", func(cfg *config.ExtractorProviderConfig) (port.DocumentExtractor, error) {
		return openaiextractor.NewExtractor(cfg), nil
	})
}

// buildExtractor assembles the primary extractor, wrapped in a fallback chain
// when a secondary provider is configured.
func buildExtractor(cfg *config.ExtractorConfig) (port.DocumentExtractor, error) {
	primary, err := extractor.NewExtractor(&cfg.Primary)
	if err != nil {
		return nil, err
	}
	secondary := cfg.SecondaryConfig()
	if secondary == nil {
		return primary, nil
	}
	fallback, err := extractor.NewExtractor(secondary)
	if err != nil {
		return nil, err
	}
	return extractor.NewFallbackExtractor(
		[]port.DocumentExtractor{primary, fallback},
		[]string{cfg.Primary.Provider, secondary.Provider},
	), nil
}

func buildEmailSender(cfg *config.EmailConfig) (port.EmailSender, error) {
	if cfg.Provider == "ses" {
		return ses.NewSESSender(cfg.Region, cfg.FromAddress, cfg.FromName, cfg.ToAddress)
	}
	return noop.NewNoopSender(), nil
}

// categoriesWithRoots returns the folder categories that have a remote root
// configured; the scheduler skips the rest.
func categoriesWithRoots(drive *config.DriveConfig) []domain.FolderCategory {
	var out []domain.FolderCategory
	for _, c := range domain.AllCategories {
		if drive.RootFolder(string(c)) != "" {
			out = append(out, c)
		}
	}
	return out
}
