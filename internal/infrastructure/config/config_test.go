package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Run("fills every empty field", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, "rentdesk-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "rentdesk", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 15*time.Minute, cfg.Upload.UploadURLExpiry)
		assert.Equal(t, time.Hour, cfg.Upload.DownloadURLExpiry)
		assert.Equal(t, 50, cfg.Upload.MaxPhotosPerOwner)
		assert.Equal(t, 320, cfg.Upload.ThumbnailMaxPixels)
		assert.Equal(t, "rentdesk-attachments", cfg.Storage.Bucket)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiration)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := &Config{}
		cfg.Database.MaxOpenConns = 50
		cfg.Upload.MaxPhotosPerOwner = 10
		applyDefaults(cfg)

		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Upload.MaxPhotosPerOwner)
	})
}

func TestValidate(t *testing.T) {
	newValid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("accepts defaults in development", func(t *testing.T) {
		cfg := newValid()
		assert.NoError(t, cfg.validate())
	})

	t.Run("rejects idle conns above open conns", func(t *testing.T) {
		cfg := newValid()
		cfg.Database.MaxIdleConns = 100
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})

	t.Run("rejects zero photo limit", func(t *testing.T) {
		cfg := newValid()
		cfg.Upload.MaxPhotosPerOwner = -1
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_photos_per_owner")
	})

	t.Run("production requires database password and ssl", func(t *testing.T) {
		cfg := newValid()
		cfg.App.Env = "production"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})

	t.Run("production rejects wildcard CORS origin", func(t *testing.T) {
		cfg := newValid()
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.Storage.AccessKey = "key"
		cfg.Storage.SecretKey = "secret"
		cfg.Storage.UseSSL = true
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	t.Run("builds postgres URL with escaped credentials", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "db.internal",
			Port:     5432,
			User:     "rentdesk",
			Password: "p@ss/word",
			DBName:   "rentdesk",
			SSLMode:  "require",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "postgres://")
		assert.Contains(t, dsn, "db.internal:5432")
		assert.Contains(t, dsn, "sslmode=require")
		assert.NotContains(t, dsn, "p@ss/word")
	})
}
