package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema (pertenece a una Company).
// El primer usuario de una empresa nueva se crea con rol admin.
type User struct {
	ID           string
	CompanyID    string // vacío para cuentas de sistema sin empresa
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
