package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

// Reglas por campo. El primer tag que falla determina el mensaje.
const (
	nameRules     = "required,min=2,max=255"
	emailRules    = "required,max=255,email"
	passwordRules = "required,min=8,max=254,password_strength"
)

// DecodeUserPayload deserializa el cuerpo de una petición de usuario. Solo se pueblan los campos
// de dto.UserPayload; los demás se ignoran.
func DecodeUserPayload(raw []byte) (*dto.UserPayload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, domain.ErrDataRequired
	}
	var p dto.UserPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, domain.ErrMalformedPayload
	}
	return &p, nil
}

// UserValidator valida payloads de usuario y acumula los errores de campo en orden estable:
// name, email, password, roles.
type UserValidator struct {
	users    repository.UserRepository
	validate *validator.Validate
}

// NewUserValidator construye el validador. users se usa para la unicidad de name y email.
func NewUserValidator(users repository.UserRepository) *UserValidator {
	return &UserValidator{users: users, validate: Validator()}
}

// ValidateCreate valida un alta: todos los campos son obligatorios salvo roles.
// Devuelve *domain.ValidationError con los mensajes, o un error de almacenamiento.
func (v *UserValidator) ValidateCreate(ctx context.Context, p *dto.UserPayload) error {
	verr := &domain.ValidationError{}
	if err := v.checkName(ctx, verr, deref(p.Name), ""); err != nil {
		return err
	}
	if err := v.checkEmail(ctx, verr, deref(p.Email), ""); err != nil {
		return err
	}
	v.checkPassword(verr, deref(p.Password))
	checkRoles(verr, p.Roles)
	if !verr.Empty() {
		return verr
	}
	return nil
}

// ValidateUpdate valida una modificación parcial de userID: solo name, email y roles, y solo si
// vienen en el payload. La contraseña no se modifica por esta vía.
func (v *UserValidator) ValidateUpdate(ctx context.Context, userID string, p *dto.UserPayload) error {
	verr := &domain.ValidationError{}
	if p.Name != nil {
		if err := v.checkName(ctx, verr, *p.Name, userID); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := v.checkEmail(ctx, verr, *p.Email, userID); err != nil {
			return err
		}
	}
	checkRoles(verr, p.Roles)
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (v *UserValidator) checkName(ctx context.Context, verr *domain.ValidationError, name, excludeID string) error {
	if msg, ok := v.fieldMessage(name, nameRules, nameMessages); !ok {
		verr.Add(msg)
		return nil
	}
	taken, err := v.users.ExistsByFullName(ctx, name, excludeID)
	if err != nil {
		return fmt.Errorf("unicidad de name: %w", err)
	}
	if taken {
		verr.Add(domain.MsgNameTaken)
	}
	return nil
}

func (v *UserValidator) checkEmail(ctx context.Context, verr *domain.ValidationError, email, excludeID string) error {
	if msg, ok := v.fieldMessage(email, emailRules, emailMessages); !ok {
		verr.Add(msg)
		return nil
	}
	taken, err := v.users.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("unicidad de email: %w", err)
	}
	if taken {
		verr.Add(domain.MsgEmailTaken)
	}
	return nil
}

func (v *UserValidator) checkPassword(verr *domain.ValidationError, password string) {
	if msg, ok := v.fieldMessage(password, passwordRules, passwordMessages); !ok {
		verr.Add(msg)
	}
}

// checkRoles agrega un mensaje por cada rol no soportado, en el orden recibido.
func checkRoles(verr *domain.ValidationError, roles []string) {
	for _, r := range roles {
		if !entity.IsSupportedRole(r) {
			verr.Add(domain.MsgRoleNotSupported + r)
		}
	}
}

var (
	nameMessages = map[string]string{
		"required": domain.MsgNameRequired,
		"min":      domain.MsgNameTooShort,
		"max":      domain.MsgNameTooLong,
	}
	emailMessages = map[string]string{
		"required": domain.MsgEmailRequired,
		"max":      domain.MsgEmailTooLong,
		"email":    domain.MsgEmailInvalid,
	}
	passwordMessages = map[string]string{
		"required":          domain.MsgPasswordRequired,
		"min":               domain.MsgPasswordLength,
		"max":               domain.MsgPasswordLength,
		"password_strength": domain.MsgPasswordWeak,
	}
)

// fieldMessage valida value con rules y traduce el tag que falló. ok=false si hay error.
func (v *UserValidator) fieldMessage(value, rules string, messages map[string]string) (string, bool) {
	err := v.validate.Var(value, rules)
	if err == nil {
		return "", true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, found := messages[verrs[0].Tag()]; found {
			return msg, false
		}
	}
	return messages["required"], false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
