package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhoneListItem proyección de un teléfono en el listado del catálogo.
type PhoneListItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// PhoneDetail proyección completa de un teléfono con el nombre de la marca ya resuelto.
type PhoneDetail struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Color        string          `json:"color"`
	DualSim      bool            `json:"dual_sim"`
	MemoryGB     float64         `json:"memory"`
	Description  string          `json:"description"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}
