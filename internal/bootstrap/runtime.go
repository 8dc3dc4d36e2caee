// Package bootstrap wires up runtime dependencies for the API commands.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	EnsureDevAdmin bool
}

// InitRuntime connects to the database and Redis. In development it can
// provision a known admin account so the admin-gated routes are reachable
// without manual SQL.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May leave a nil client when Redis is unreachable; the cache degrades
	// to direct reads.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.EnsureDevAdmin {
		if err := ensureDevAdmin(cfg, db); err != nil {
			return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
		}
	}

	return db, r, nil
}

// ensureDevAdmin creates or promotes the development admin account.
// Only runs outside production.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if strings.EqualFold(cfg.Env, "production") {
		return nil
	}

	email := "admin@inkwell.local"
	hashed, err := bcrypt.GenerateFromPassword([]byte("AdminPassword123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("email = ?", email).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Name:     "Inkwell Admin",
				Email:    email,
				Password: string(hashed),
				IsAdmin:  true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			slog.Info("created development admin", "email", email)
			return nil
		case findErr != nil:
			return findErr
		default:
			if admin.IsAdmin {
				return nil
			}
			admin.IsAdmin = true
			if err := tx.Save(&admin).Error; err != nil {
				return err
			}
			slog.Info("promoted development admin", "email", email)
			return nil
		}
	})
}
