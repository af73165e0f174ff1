package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lapirenov/backend/internal/db/models"
	"github.com/lapirenov/backend/internal/db/repos"
	"github.com/lapirenov/backend/internal/services"
	"github.com/lapirenov/backend/internal/types"
)

// flag names
const (
	flagFixture = "fixture"
)

// GetSeedCmd returns the seed command group
func GetSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision the admin account and portfolio fixture data",
	}

	seedCmd.AddCommand(getSeedAdminCmd())
	seedCmd.AddCommand(getSeedProjectsCmd())

	return seedCmd
}

func getSeedAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Create or rotate the admin account from ADMIN_EMAIL / ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, cfg, err := openDB()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
				return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
			}

			auth := services.NewAuthService(repos.NewAdminRepository(database))
			admin, err := auth.ProvisionAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
			if err != nil {
				return fmt.Errorf("failed to provision admin: %w", err)
			}

			cmd.Printf("Admin %s ready (id %d)\n", admin.Email, admin.ID)
			return nil
		},
	}
}

// seedProject mirrors the fixture file shape. Images may be a list or the
// legacy single image field; materials may be a list or a delimited string.
type seedProject struct {
	Title               string      `json:"title"`
	Category            string      `json:"category"`
	Image               string      `json:"image"`
	Images              []string    `json:"images"`
	Description         string      `json:"description"`
	DetailedDescription string      `json:"detailedDescription"`
	Timeline            string      `json:"timeline"`
	Budget              string      `json:"budget"`
	Materials           interface{} `json:"materials"`
}

func mapSeedProject(seed seedProject) models.Project {
	images := types.NormalizeProjectImages(seed.Images, seed.Image)

	image := ""
	if len(images) > 0 {
		image = images[0]
	}

	return models.Project{
		Title:               seed.Title,
		Category:            string(types.CategoryOrOther(seed.Category)),
		Image:               image,
		Images:              models.StringList(images),
		Description:         seed.Description,
		DetailedDescription: seed.DetailedDescription,
		Timeline:            seed.Timeline,
		Budget:              seed.Budget,
		Materials:           models.StringList(types.NormalizeMaterials(seed.Materials)),
	}
}

func getSeedProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Replace all projects with the contents of a JSON fixture file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fixturePath, err := cmd.Flags().GetString(flagFixture)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(fixturePath)
			if err != nil {
				return fmt.Errorf("failed to read fixture file: %w", err)
			}

			var seeds []seedProject
			if err := json.Unmarshal(raw, &seeds); err != nil {
				return fmt.Errorf("failed to parse fixture file: %w", err)
			}

			database, _, err := openDB()
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}

			ctx := context.Background()
			repo := repos.NewProjectRepository(database)
			if err := repo.DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to clear projects: %w", err)
			}

			for _, seed := range seeds {
				project := mapSeedProject(seed)
				if err := repo.Create(ctx, &project); err != nil {
					return fmt.Errorf("failed to create project %q: %w", seed.Title, err)
				}
			}

			cmd.Printf("Seed completed: %d projects created\n", len(seeds))
			return nil
		},
	}

	cmd.Flags().StringP(flagFixture, "f", "seed/projects.json", "Path to the projects fixture file")
	return cmd
}
