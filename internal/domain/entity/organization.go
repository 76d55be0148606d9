package entity

import "time"

// Organization representa el tenant de Cold Stock: todas las consultas se filtran por su ID.
type Organization struct {
	ID        string
	Name      string
	PhotoURL  string // opcional (columna foto)
	CreatedAt time.Time
}
