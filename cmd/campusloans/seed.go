package main

import (
	"context"
	"fmt"

	"campusloans/internal/db"
	"campusloans/internal/seed"
	"campusloans/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with development fixtures",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		userRepo := store.NewUserRepository(pool)
		applicationsRepo := store.NewApplicationRepository(pool)

		logrus.Info("Seeding fake students...")
		if err := seed.SeedFakeStudents(ctx, userRepo); err != nil {
			return fmt.Errorf("failed to seed fake students: %w", err)
		}

		logrus.Info("Seeding sample loan applications...")
		if err := seed.SeedSampleApplications(ctx, applicationsRepo); err != nil {
			return fmt.Errorf("failed to seed sample applications: %w", err)
		}

		logrus.Info("Seed complete")

		return nil
	},
}
