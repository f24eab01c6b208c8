package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Phone representa un modelo del catálogo. La API solo lo lee; la marca es obligatoria
// y se carga junto con el teléfono.
type Phone struct {
	ID           string
	Name         string
	Brand        Brand
	Color        string
	DualSim      bool
	MemoryGB     float64
	Description  string
	SellingPrice decimal.Decimal // precio de venta
	CreatedAt    time.Time
	UpdatedAt    *time.Time // nil si nunca se modificó
}
