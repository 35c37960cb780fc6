package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	"github.com/Gitram007/pre-deployment--v2/internal/domain"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/entity"
	"github.com/Gitram007/pre-deployment--v2/internal/domain/repository"
	"github.com/Gitram007/pre-deployment--v2/pkg/logger"
)

// UserUseCase administración de usuarios dentro de la empresa (solo admin).
type UserUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, log: log}
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleStaff
}

// Create da de alta un usuario en la empresa del admin autenticado.
func (uc *UserUseCase) Create(companyID string, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if companyID == "" {
		return nil, domain.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 || !validRole(req.Role) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         req.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("usuario creado")
	resp := toUserDTO(user)
	return &resp, nil
}

// List usuarios de la empresa.
func (uc *UserUseCase) List(companyID string) ([]dto.UserResponse, error) {
	if companyID == "" {
		return []dto.UserResponse{}, nil
	}
	users, err := uc.userRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserDTO(u))
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario de la misma empresa.
// El admin no puede degradarse a sí mismo: la empresa quedaría sin admin.
func (uc *UserUseCase) UpdateRole(companyID, actorID, userID string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !validRole(req.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if user.ID == actorID && req.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.userRepo.UpdateRole(userID, req.Role); err != nil {
		return nil, err
	}
	user.Role = req.Role
	resp := toUserDTO(user)
	return &resp, nil
}

// Delete elimina un usuario de la misma empresa (nunca a uno mismo).
func (uc *UserUseCase) Delete(companyID, actorID, userID string) error {
	if userID == actorID {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(userID)
}

func toUserDTO(u *entity.User) dto.UserResponse {
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
