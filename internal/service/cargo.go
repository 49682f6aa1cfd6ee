package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"horas-api/internal/models"
	"horas-api/internal/repository"
)

type CargoService interface {
	List(ctx context.Context) ([]models.Cargo, error)
	Seed(ctx context.Context, nomes []string) (int, error)
}

type cargoService struct {
	repo   repository.CargoRepository
	logger *zap.Logger
}

func NewCargoService(repo repository.CargoRepository, logger *zap.Logger) CargoService {
	return &cargoService{repo: repo, logger: logger}
}

func (s *cargoService) List(ctx context.Context) ([]models.Cargo, error) {
	cargos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list cargos", zap.Error(err))
		return nil, err
	}
	return cargos, nil
}

// Seed inserts the given role names only when the cargos table is empty,
// so restarting with the same configuration never duplicates roles.
func (s *cargoService) Seed(ctx context.Context, nomes []string) (int, error) {
	if len(nomes) == 0 {
		return 0, nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count cargos: %w", err)
	}
	if count > 0 {
		s.logger.Debug("Cargos already present, skipping seed", zap.Int("count", count))
		return 0, nil
	}

	inserted := 0
	for _, nome := range nomes {
		nome = strings.TrimSpace(nome)
		if nome == "" {
			continue
		}
		if err := s.repo.Create(ctx, &models.Cargo{Nome: nome}); err != nil {
			return inserted, fmt.Errorf("failed to seed cargo %q: %w", nome, err)
		}
		inserted++
	}
	s.logger.Info("Seeded cargos", zap.Int("count", inserted))
	return inserted, nil
}
