package entity

import "time"

// Customer representa un cliente de la plataforma (tenant). Es dueño de sus usuarios:
// cada User guarda el CustomerID de su cliente.
type Customer struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
