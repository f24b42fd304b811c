package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rawad/acadex/internal/app/models"
	appRepos "github.com/rawad/acadex/internal/app/repositories"
	"github.com/rawad/acadex/internal/pkg/apperrors"
	"github.com/rawad/acadex/internal/pkg/auth"
)

const superadminUsername = "superadmin"

// CreateDefaultData seeds the superadmin account and a couple of default
// departments if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (superadmin account, departments)...")
	var finalErr error

	// --- Superadmin account --- //
	exists, err := userRepo.UsernameExists(ctx, superadminUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking superadmin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		password := os.Getenv("SUPERADMIN_PASSWORD")
		if password == "" {
			password = "superadmin123"
			lgr.Warn().Msg("SUPERADMIN_PASSWORD not set, seeding superadmin with the default password")
		}

		hashed, err := auth.HashPassword(password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing superadmin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			superadmin := &appModels.User{
				Username: superadminUsername,
				Password: hashed,
				Role:     appModels.RoleSuperAdmin,
				IsActive: true,
			}
			if _, err := userRepo.CreateUser(ctx, superadmin); err != nil {
				lgr.Error().Err(err).Msg("Error creating superadmin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Msg("Superadmin account created")
			}
		}
	}

	// --- Default departments --- //
	for _, name := range []string{"General Medicine", "Dentistry", "Pharmacy"} {
		department := &appModels.Department{Name: name}
		if _, err := departmentRepo.CreateDepartment(ctx, department); err != nil &&
			!errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete")
	}
	return finalErr
}
