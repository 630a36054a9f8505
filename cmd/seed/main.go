package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/oggyb/sms-dispatch/internal/config"
	"github.com/oggyb/sms-dispatch/internal/db/gormdb"
	"github.com/oggyb/sms-dispatch/internal/domain/group"
	"github.com/oggyb/sms-dispatch/internal/logger"
	groupRepo "github.com/oggyb/sms-dispatch/internal/repository/gorm/group"
)

func main() {
	ctx := context.Background()

	// Load application configuration (DB etc.) from env/.env.
	cfg := config.New()

	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		logger.Fatalf("[Seed] Failed to connect to database: %v", err)
	}

	logger.Infof("[Seed] Connected to database %q", cfg.DB.Name)

	// 1) AutoMigrate: make sure the groups table exists.
	if err := gormAdapter.Migrate(&groupRepo.GroupModel{}); err != nil {
		logger.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	logger.Infof("[Seed] recipient_groups table is up to date.")

	// 2) Seed a few demo groups with random numbers.
	const (
		groupCount = 3
		perGroup   = 5
	)

	repo := groupRepo.NewRepository(gormAdapter)

	for i := 1; i <= groupCount; i++ {
		name := fmt.Sprintf("demo-%d", i)

		recipients := make([]string, perGroup)
		for j := range recipients {
			recipients[j] = randomPhone()
		}

		// Use the domain constructor so recipients are validated.
		g, err := group.New(name, recipients)
		if err != nil {
			logger.Fatalf("[Seed] Invalid group %s: %v", name, err)
		}

		if err := repo.Save(ctx, g); err != nil {
			if errors.Is(err, group.ErrAlreadyExists) {
				logger.Infof("[Seed] Group %s already exists, skipping", name)
				continue
			}
			logger.Fatalf("[Seed] Failed to save group %s: %v", name, err)
		}

		logger.Infof("[Seed] Created group %s: id=%s recipients=%d", g.Name, g.ID, len(g.Recipients))
	}

	logger.Infof("[Seed] Done.")
}

// randomPhone generates a simple fake phone number in an E.164-like format.
// Example output: +358501234567
func randomPhone() string {
	n := rand.Intn(9000000) + 1000000 // 7 digits
	return fmt.Sprintf("+35850%d", n)
}
