package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Backup
		ImageCache
		Audit
		WordSource
		Maintenance
		Tasks
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Backup struct {
		Dir           string
		RetentionDays int // Days to keep backup documents (default: 90)
	}
	ImageCache struct {
		Dir string
	}
	Audit struct {
		Dir           string
		RetentionDays int // Days to keep audit events (default: 30)
	}
	WordSource struct {
		WordsURL  string // Remote level-keyed word document
		ImagesURL string // Remote background image URL list
		Timeout   time.Duration
	}
	Maintenance struct {
		Schedule            string        // Cron format: "30 3 * * *" = daily at 03:30
		CheckpointRetention time.Duration // How long resume checkpoints are kept (default: 24h)
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Log struct {
		File       string // Empty means stderr only
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8177)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("backup_retention_days", 90)
	v.SetDefault("image_cache_dir", DefaultImageCacheDir)
	v.SetDefault("audit_dir", "./audit")
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("word_source_url", "")
	v.SetDefault("image_source_url", "")
	v.SetDefault("word_source_timeout", "30s")
	v.SetDefault("maintenance_schedule", "30 3 * * *") // Daily at 03:30
	v.SetDefault("checkpoint_retention", "24h")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Log rotation defaults
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 20)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 14)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Backup: Backup{
			Dir:           v.GetString("BACKUP_DIR"),
			RetentionDays: v.GetInt("BACKUP_RETENTION_DAYS"),
		},
		ImageCache: ImageCache{
			Dir: v.GetString("IMAGE_CACHE_DIR"),
		},
		Audit: Audit{
			Dir:           v.GetString("AUDIT_DIR"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		WordSource: WordSource{
			WordsURL:  v.GetString("WORD_SOURCE_URL"),
			ImagesURL: v.GetString("IMAGE_SOURCE_URL"),
			Timeout:   v.GetDuration("WORD_SOURCE_TIMEOUT"),
		},
		Maintenance: Maintenance{
			Schedule:            v.GetString("MAINTENANCE_SCHEDULE"),
			CheckpointRetention: v.GetDuration("CHECKPOINT_RETENTION"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Log: Log{
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
	}
}
