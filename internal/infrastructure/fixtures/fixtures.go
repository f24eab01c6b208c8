package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

// DefaultPassword contraseña en claro de todos los usuarios de demostración.
const DefaultPassword = "Abcd1234"

// Tokens de demostración. Token1 y Token3 son ADMIN de los clientes 1 y 2; Token2 y Token4, USER.
const (
	Token1       = "token1"
	Token2       = "token2"
	Token3       = "token3"
	Token4       = "token4"
	ExpiredToken = "expiredToken!"
)

// Repos puertos donde se cargan los datos.
type Repos struct {
	Customers repository.CustomerRepository
	Phones    repository.PhoneRepository
	Users     repository.UserRepository
}

// Data conjunto de datos de demostración.
type Data struct {
	Customers []*entity.Customer
	Brands    []*entity.Brand
	Phones    []*entity.Phone
	Users     []*entity.User
}

// ID genera un UUID determinista para kind/n, estable entre ejecuciones.
func ID(kind string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("bilemo:%s:%d", kind, n))).String()
}

// CustomerID id del cliente de demostración n (1 o 2).
func CustomerID(n int) string { return ID("customer", n) }

// UserID id del usuario de demostración n (1 a 6).
func UserID(n int) string { return ID("user", n) }

// PhoneID id del teléfono de demostración n (1 a 20).
func PhoneID(n int) string { return ID("phone", n) }

var colors = []string{"black", "white", "gold", "silver", "blue", "green", "red", "pink"}

// Build arma los datos: 3 marcas, 20 teléfonos, 2 clientes y los usuarios "User 1" a "User 6".
// Las credenciales válidas vencen un año después de now; User 5 tiene una vencida y User 6 ninguna.
func Build(now time.Time) (*Data, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash de contraseña: %w", err)
	}
	d := &Data{}

	for i := 1; i <= 3; i++ {
		d.Brands = append(d.Brands, &entity.Brand{ID: ID("brand", i), Name: fmt.Sprintf("Marca %d", i)})
	}
	for i := 1; i <= 20; i++ {
		d.Phones = append(d.Phones, &entity.Phone{
			ID:           PhoneID(i),
			Name:         fmt.Sprintf("Phone %d", i),
			Brand:        *d.Brands[i%len(d.Brands)],
			Color:        colors[i%len(colors)],
			DualSim:      i%2 == 0,
			MemoryGB:     float64(4 + (i*37)%97),
			Description:  fmt.Sprintf("Descripción n° %d", i),
			SellingPrice: decimal.New(int64(2000+(i*2377)%48000), -2),
			CreatedAt:    now.Add(time.Duration(i) * time.Second),
		})
	}
	for i := 1; i <= 2; i++ {
		d.Customers = append(d.Customers, &entity.Customer{
			ID:        CustomerID(i),
			Name:      fmt.Sprintf("Customer %d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		})
	}

	valid := now.AddDate(1, 0, 0)
	expired := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []struct {
		customer int
		roles    []string
		token    string
		validity *time.Time
	}{
		{1, []string{entity.RoleAdmin}, Token1, &valid},
		{1, nil, Token2, &valid},
		{2, []string{entity.RoleAdmin}, Token3, &valid},
		{2, nil, Token4, &valid},
		{1, []string{entity.RoleAdmin}, ExpiredToken, &expired},
		{1, nil, "", nil},
	}
	for i, u := range users {
		n := i + 1
		var validity *time.Time
		if u.validity != nil {
			t := *u.validity
			validity = &t
		}
		d.Users = append(d.Users, &entity.User{
			ID:            UserID(n),
			CustomerID:    CustomerID(u.customer),
			FullName:      fmt.Sprintf("User %d", n),
			Email:         fmt.Sprintf("contact%d@testmail.com", n),
			PasswordHash:  string(hash),
			Roles:         u.roles,
			Token:         u.token,
			TokenValidity: validity,
			CreatedAt:     now.Add(time.Duration(n) * time.Second),
		})
	}
	return d, nil
}

// Load construye los datos y los persiste a través de los puertos de repositorio.
func Load(ctx context.Context, repos Repos, now time.Time) (*Data, error) {
	d, err := Build(now)
	if err != nil {
		return nil, err
	}
	for _, b := range d.Brands {
		if err := repos.Phones.CreateBrand(ctx, b); err != nil {
			return nil, fmt.Errorf("marca %s: %w", b.Name, err)
		}
	}
	for _, p := range d.Phones {
		if err := repos.Phones.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("teléfono %s: %w", p.Name, err)
		}
	}
	for _, c := range d.Customers {
		if err := repos.Customers.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("cliente %s: %w", c.Name, err)
		}
	}
	for _, u := range d.Users {
		if err := repos.Users.Create(ctx, u); err != nil {
			return nil, fmt.Errorf("usuario %s: %w", u.FullName, err)
		}
	}
	return d, nil
}
