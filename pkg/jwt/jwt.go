package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el cliente (tenant) del usuario.
// El token se entrega al cliente como credencial opaca: la API nunca lo parsea para autorizar,
// lo resuelve contra el valor almacenado en el usuario.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID string `json:"customer_id"`
}

// Generate genera un token firmado para userID/customerID con vencimiento now+ttl.
// Devuelve también el instante de expiración, que se persiste junto al token.
func Generate(secret, userID, customerID, issuer string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return "", time.Time{}, fmt.Errorf("jwt: ttl debe ser positivo")
	}
	expiresAt := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		CustomerID: customerID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: firmar token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse valida firma y vencimiento y devuelve los claims. Se usa en herramientas y tests;
// la resolución de credenciales de la API se hace por búsqueda del valor almacenado.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
