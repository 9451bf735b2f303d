package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rural-health-assistant/internal/auth"
	"rural-health-assistant/internal/config"
	"rural-health-assistant/internal/database"
	"rural-health-assistant/internal/logging"
	"rural-health-assistant/internal/models"
	"rural-health-assistant/internal/repository"
)

var defaultTips = []string{
	"Drink at least 8 glasses of water daily.",
	"Get at least 7–8 hours of sleep each night.",
	"Incorporate fruits and vegetables into every meal.",
	"Take short walks after meals to aid digestion.",
	"Practice deep breathing or meditation for 10 minutes daily.",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into the health assistant database",
	}

	rootCmd.AddCommand(tipsCmd())
	rootCmd.AddCommand(userCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withRepository connects using the server configuration and hands fn a repository.
func withRepository(ctx context.Context, fn func(repo *repository.Repository) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	client, db, err := database.NewMongoDB(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	return fn(repository.NewRepository(db, cfg.Mongo.Timeout))
}

func tipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips [tip...]",
		Short: "Insert health tips; the default list is used when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			tips := args
			if len(tips) == 0 {
				tips = defaultTips
			}

			return withRepository(cmd.Context(), func(repo *repository.Repository) error {
				for _, tip := range tips {
					if err := repo.UpsertTip(cmd.Context(), tip); err != nil {
						return fmt.Errorf("seed tip %q: %w", tip, err)
					}
				}
				fmt.Printf("Seeded %d tip(s).\n", len(tips))
				return nil
			})
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create or update a login",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			password, _ := cmd.Flags().GetString("password")
			role, _ := cmd.Flags().GetString("role")
			plain, _ := cmd.Flags().GetBool("plain")

			stored := password
			if !plain {
				hash, err := auth.HashPassword(password)
				if err != nil {
					return fmt.Errorf("hash password: %w", err)
				}
				stored = hash
			}

			return withRepository(cmd.Context(), func(repo *repository.Repository) error {
				if err := repo.SaveUser(cmd.Context(), &models.User{Name: name, Password: stored, Role: role}); err != nil {
					return fmt.Errorf("save user: %w", err)
				}
				fmt.Printf("Saved user %s.\n", name)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Login name")
	cmd.Flags().String("password", "", "Login password")
	cmd.Flags().String("role", "patient", "Role stored with the user (patient or doctor)")
	cmd.Flags().Bool("plain", false, "Store the password without hashing")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
