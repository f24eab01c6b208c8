package entity

// Brand marca de un teléfono del catálogo.
type Brand struct {
	ID   string
	Name string
}
