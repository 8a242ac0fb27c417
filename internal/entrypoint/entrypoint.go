package entrypoint

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kelimeci/kelimeci/internal/audit"
	"github.com/kelimeci/kelimeci/internal/backup"
	"github.com/kelimeci/kelimeci/internal/config"
	"github.com/kelimeci/kelimeci/internal/database"
	"github.com/kelimeci/kelimeci/internal/database/dictionary"
	"github.com/kelimeci/kelimeci/internal/database/exercises"
	"github.com/kelimeci/kelimeci/internal/database/images"
	"github.com/kelimeci/kelimeci/internal/database/learned"
	"github.com/kelimeci/kelimeci/internal/database/lists"
	"github.com/kelimeci/kelimeci/internal/database/settings"
	http_controllers "github.com/kelimeci/kelimeci/internal/http"
	"github.com/kelimeci/kelimeci/internal/imagecache"
	"github.com/kelimeci/kelimeci/internal/scheduler"
	"github.com/kelimeci/kelimeci/internal/settingsstore"
	"github.com/kelimeci/kelimeci/internal/tasks"
	"github.com/kelimeci/kelimeci/internal/wordsource"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// setupLogging routes the standard logger through a rotating file when
// one is configured. Logs always also go to stderr.
func setupLogging(cfg *config.Config) {
	if cfg.Log.File == "" {
		return
	}
	rotator := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, rotator))
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server with
	// a configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	setupLogging(cfg)
	log.Printf("Starting Kelimeci v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Per-concern repositories over the shared connection
	dictionaryRepo := dictionary.NewRepository(db.DB)
	learnedRepo := learned.NewRepository(db.DB)
	listsRepo := lists.NewRepository(db.DB)
	exercisesRepo := exercises.NewRepository(db.DB)
	imagesRepo := images.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)
	settingsStore := settingsstore.New(settingsRepo)

	// Backup/restore codec over the repositories
	backupService := backup.NewService(learnedRepo, exercisesRepo, listsRepo, settingsStore, cfg.Backup.Dir)

	// Audit trail for import/backup/restore/cleanup operations
	auditService := audit.NewService(audit.NewAuditor(cfg.Audit.Dir))

	// Remote word source (optional)
	var loader *wordsource.Loader
	if cfg.WordSource.WordsURL != "" {
		client := wordsource.NewClient(cfg.WordSource.WordsURL, cfg.WordSource.ImagesURL, cfg.WordSource.Timeout)
		loader = wordsource.NewLoader(client, dictionaryRepo, imagesRepo)
	}

	// Background image cache (optional)
	var imageCache *imagecache.Cache
	if cfg.ImageCache.Dir != "" {
		imageCache, err = imagecache.NewCache(cfg.ImageCache.Dir, imagesRepo)
		if err != nil {
			log.Printf("WARNING: Failed to initialize image cache: %v", err)
			imageCache = nil
		} else {
			log.Printf("Image cache initialized at %s", cfg.ImageCache.Dir)
		}
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewPurgeCheckpointsQueue(exercisesRepo),
			tasks.NewCleanupBackupsQueue(),
			tasks.NewCleanupAuditQueue(auditService),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Maintenance scheduler enqueues the cleanup batch on a cron schedule
	var maintenance *scheduler.MaintenanceScheduler
	if taskClient != nil {
		maintenance = scheduler.NewMaintenanceScheduler(taskClient, cfg)
		if err := maintenance.Start(context.Background()); err != nil {
			log.Printf("WARNING: Failed to start maintenance scheduler: %v", err)
		}
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		Config:        cfg,
		Dictionary:    dictionaryRepo,
		Learned:       learnedRepo,
		Lists:         listsRepo,
		Exercises:     exercisesRepo,
		Images:        imagesRepo,
		SettingsStore: settingsStore,
		BackupService: backupService,
		Loader:        loader,
		ImageCache:    imageCache,
		AuditService:  auditService,
		TaskClient:    taskClient,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if maintenance != nil {
			maintenance.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
