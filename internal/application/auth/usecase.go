package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/config"
	"github.com/Gitram007/pre-deployment--v2/pkg/jwt"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// UseCase registro de empresas y autenticación de usuarios.
type UseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	jwtCfg      config.JWTConfig
	log         *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	jwtCfg config.JWTConfig,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		userRepo:    userRepo,
		jwtCfg:      jwtCfg,
		log:         log,
	}
}

// Register crea la empresa y su primer usuario con rol admin, en una sola
// transacción. Nombre de empresa duplicado: ErrDuplicate. Email ya usado:
// ErrEmailAlreadyExists.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if companyName == "" || email == "" || len(req.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      companyName,
		CreatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegister(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("company_id", company.ID).
		Str("user_id", user.ID).
		Msg("empresa registrada con usuario admin inicial")

	return &dto.RegisterResponse{
		Company: dto.CompanyResponse{ID: company.ID, Name: company.Name, CreatedAt: company.CreatedAt},
		User:    toUserResponse(user),
	}, nil
}

// Login valida credenciales y emite un JWT con user_id, company_id y role.
// Credenciales inválidas responden siempre ErrUnauthorized, sin distinguir
// email inexistente de contraseña incorrecta.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Msg("login exitoso")
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
