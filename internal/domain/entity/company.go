package entity

import "time"

// Company representa una organización/tenant del sistema. Toda entidad de
// negocio pertenece a exactamente una Company; nada es visible fuera de ella.
type Company struct {
	ID        string
	Name      string // único a nivel global
	CreatedAt time.Time
}
