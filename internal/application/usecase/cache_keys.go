package usecase

import (
	"fmt"
	"strings"
)

// CacheNamespace espacio de nombres de la caché. La clave de cada entrada es el nombre del
// espacio seguido de sus partes, separadas por guiones; es el único esquema de direccionamiento
// que usan las invalidaciones.
type CacheNamespace string

const (
	CacheAllUsers     CacheNamespace = "getAllUsers"
	CacheUserDetails  CacheNamespace = "getUserDetails"
	CacheAllPhones    CacheNamespace = "getAllPhones"
	CachePhoneDetails CacheNamespace = "getPhoneDetails"
)

// Key construye la clave del espacio con las partes dadas.
func (n CacheNamespace) Key(parts ...any) string {
	var b strings.Builder
	b.WriteString(string(n))
	for _, part := range parts {
		b.WriteByte('-')
		fmt.Fprint(&b, part)
	}
	return b.String()
}

type cacheEntry struct {
	key  string
	tags []string
}

// allUsersEntry página de usuarios de un cliente; todas las páginas comparten la etiqueta del cliente.
func allUsersEntry(customerID string, page int) cacheEntry {
	return cacheEntry{key: CacheAllUsers.Key(customerID, page), tags: []string{allUsersTag(customerID)}}
}

func allUsersTag(customerID string) string {
	return CacheAllUsers.Key(customerID)
}

// userDetailsEntry detalle de un usuario; clave y etiqueta coinciden.
func userDetailsEntry(customerID, userID string) cacheEntry {
	key := CacheUserDetails.Key(customerID, userID)
	return cacheEntry{key: key, tags: []string{key}}
}

func allPhonesEntry(page int) cacheEntry {
	return cacheEntry{key: CacheAllPhones.Key(page), tags: []string{string(CacheAllPhones)}}
}

func phoneDetailsEntry(phoneID string) cacheEntry {
	key := CachePhoneDetails.Key(phoneID)
	return cacheEntry{key: key, tags: []string{key}}
}
