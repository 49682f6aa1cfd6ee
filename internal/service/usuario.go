package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"horas-api/internal/crypto"
	"horas-api/internal/models"
	"horas-api/internal/repository"
)

// PasswordHasher is the credential check used at registration and login.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Usuario   *models.Usuario
}

type UsuarioService interface {
	Register(ctx context.Context, email, senha string, funcionarioID int64) (*models.Usuario, error)
	Login(ctx context.Context, email, senha string) (*LoginResult, error)
	List(ctx context.Context) ([]models.UsuarioView, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioService struct {
	repo   repository.UsuarioRepository
	hasher PasswordHasher
	tokens TokenService
	logger *zap.Logger
}

func NewUsuarioService(repo repository.UsuarioRepository, hasher PasswordHasher, tokens TokenService, logger *zap.Logger) UsuarioService {
	return &usuarioService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *usuarioService) Register(ctx context.Context, email, senha string, funcionarioID int64) (*models.Usuario, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" || funcionarioID == 0 {
		return nil, ErrValidation
	}

	passwordHash, err := s.hasher.Hash(senha)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	usuario := &models.Usuario{
		Email:         email,
		Senha:         passwordHash,
		FuncionarioID: &funcionarioID,
	}
	// Email uniqueness is left to the UNIQUE index so concurrent registrations cannot race.
	if err := s.repo.Create(ctx, usuario); err != nil {
		if repository.IsConstraintViolation(err) {
			s.logger.Warn("Rejected user registration", zap.String("email", email), zap.Error(err))
		} else {
			s.logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.Int64("id", usuario.ID))
	return usuario, nil
}

func (s *usuarioService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	usuario, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if usuario == nil {
		return nil, ErrUserNotFound
	}

	if !s.hasher.Verify(senha, usuario.Senha) {
		return nil, ErrInvalidPassword
	}

	tokenString, expiresAt, err := s.tokens.Issue(usuario.ID, usuario.FuncionarioID)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in successfully.", zap.Int64("id", usuario.ID))
	return &LoginResult{Token: tokenString, ExpiresAt: expiresAt, Usuario: usuario}, nil
}

func (s *usuarioService) List(ctx context.Context) ([]models.UsuarioView, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	return usuarios, nil
}

// Delete does not check that the user existed.
func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete user", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return nil
}
