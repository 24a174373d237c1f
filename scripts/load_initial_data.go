package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"tenant-portal-backend/internal/auth"
	"tenant-portal-backend/internal/config"
	"tenant-portal-backend/internal/database"
	apperrors "tenant-portal-backend/internal/errors"
	"tenant-portal-backend/internal/repository"
	"tenant-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// OrganizationData matches one entry of the YAML fixture
type OrganizationData struct {
	Name          string `yaml:"name"`
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

type FixtureFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

// Loads a YAML fixture of organizations and provisions each one through the
// regular engine, so seeded tenants get the same collections, hashing and
// uniqueness guarantees as API-created ones. Existing organizations are
// skipped, which makes the loader safe to re-run.
func main() {
	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.Initialize(ctx, cfg.MongoURI, cfg.MasterDBName, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		_ = db.Close(closeCtx)
	}()

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
		Issuer:    "tenant-portal-backend",
	})
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	orgService := service.NewOrganizationService(
		repository.NewOrganizationRepository(db),
		repository.NewAdminRepository(db),
		repository.NewTenantStoreRepository(db),
		validator.New(),
	)

	fixture, err := readFixture(path)
	if err != nil {
		log.Fatalf("Failed to read fixture %s: %v", path, err)
	}

	var created, skipped int
	for _, org := range fixture.Organizations {
		hash, err := authService.HashPassword(org.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", org.Name, err)
		}

		resp, err := orgService.Create(ctx, &service.CreateOrganizationRequest{
			OrganizationName: org.Name,
			Email:            org.AdminEmail,
			PasswordHash:     hash,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrOrganizationExists) || errors.Is(err, apperrors.ErrAdminExists) {
				log.Printf("Skipping %s: %v", org.Name, err)
				skipped++
				continue
			}
			log.Fatalf("Failed to create organization %s: %v", org.Name, err)
		}

		log.Printf("Created organization %s (slug=%s, collection=%s)",
			resp.OrganizationName, resp.OrganizationSlug, resp.CollectionName)
		created++
	}

	log.Printf("Done: %d created, %d skipped", created, skipped)
}

func readFixture(path string) (*FixtureFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fixture FixtureFile
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(fixture.Organizations) == 0 {
		return nil, fmt.Errorf("fixture contains no organizations")
	}
	return &fixture, nil
}
