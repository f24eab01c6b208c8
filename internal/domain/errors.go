package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas). El texto de cada error es el mensaje
// que recibe el cliente de la API.
var (
	// Autenticación (401).
	ErrTokenMissing = errors.New("solo un usuario autenticado puede acceder a la API")
	ErrTokenInvalid = errors.New("el token de autenticación no es válido")
	ErrTokenExpired = errors.New("el token de autenticación ha expirado")
	ErrUnauthorized = errors.New("credenciales inválidas")

	// Autorización: cliente inexistente (404), otro tenant o rol insuficiente (403).
	ErrTenantNotFound   = errors.New("el cliente no fue encontrado")
	ErrCrossTenant      = errors.New("no puede realizar esta operación confidencial")
	ErrInsufficientRole = errors.New("no tiene un nivel de acceso suficiente")

	// Validación (400).
	ErrDataRequired      = errors.New("los datos deben ser proporcionados")
	ErrMalformedPayload  = errors.New("los datos enviados no tienen un formato JSON válido")
	ErrInvalidPageNumber = errors.New("el número de página no es válido")

	// Objetivo inexistente (404).
	ErrUserNotFound  = errors.New("el usuario no fue encontrado")
	ErrPhoneNotFound = errors.New("no se encontró ningún modelo")

	// Página vacía (204).
	ErrNoPhones = errors.New("no hay datos disponibles por el momento")
	ErrNoUsers  = errors.New("no hay usuarios en la página elegida")

	// Almacenamiento (500): el detalle nunca se expone.
	ErrStorage = errors.New("se produjo un error interno")

	// Errores de persistencia que los adaptadores devuelven a la capa de aplicación.
	ErrNotFound  = errors.New("recurso no encontrado")
	ErrDuplicate = errors.New("recurso duplicado")
)

// Mensajes de validación de campos del usuario.
const (
	MsgNameRequired     = "el nombre de usuario (name) debe ser informado"
	MsgNameTooShort     = "el nombre de usuario (name) debe contener al menos dos caracteres"
	MsgNameTooLong      = "el nombre de usuario (name) no puede superar los 255 caracteres"
	MsgNameTaken        = "este nombre de usuario (name) ya existe"
	MsgEmailRequired    = "la dirección de correo debe ser informada"
	MsgEmailInvalid     = "la dirección de correo no es válida"
	MsgEmailTooLong     = "la dirección de correo no puede superar los 255 caracteres"
	MsgEmailTaken       = "este correo ya está en uso"
	MsgPasswordRequired = "debe elegir una contraseña"
	MsgPasswordLength   = "la contraseña debe tener entre 8 y 254 caracteres"
	MsgPasswordWeak     = "la contraseña debe contener al menos una minúscula, una mayúscula y un dígito"
	MsgRoleNotSupported = "este rol no está soportado: "
)

// ValidationError acumula, en orden estable, los mensajes de error de campo de un payload.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Messages, "; ")
}

// Add agrega un mensaje y devuelve el receptor para encadenar.
func (e *ValidationError) Add(msg string) *ValidationError {
	e.Messages = append(e.Messages, msg)
	return e
}

// Empty indica si no se registró ningún error.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Messages) == 0
}
