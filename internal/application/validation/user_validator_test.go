package validation_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/application/validation"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
)

func newValidator(t *testing.T) *validation.UserValidator {
	t.Helper()
	s := memory.NewStore()
	_, err := fixtures.Load(context.Background(), fixtures.Repos{
		Customers: s.Customers(), Phones: s.Phones(), Users: s.Users(),
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return validation.NewUserValidator(s.Users())
}

func ptr(s string) *string { return &s }

func messages(t *testing.T, err error) []string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Messages
}

func TestDecodeUserPayload(t *testing.T) {
	_, err := validation.DecodeUserPayload(nil)
	assert.ErrorIs(t, err, domain.ErrDataRequired)

	_, err = validation.DecodeUserPayload([]byte("  null "))
	assert.ErrorIs(t, err, domain.ErrDataRequired)

	_, err = validation.DecodeUserPayload([]byte(`{"name":`))
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)

	p, err := validation.DecodeUserPayload([]byte(`{"name":"Ana","customer":"otro","id":"x","roles":["ADMIN"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", *p.Name)
	assert.Nil(t, p.Email, "los campos ausentes quedan sin poblar")
	assert.Equal(t, []string{"ADMIN"}, p.Roles)
}

func TestValidateCreate_Valido(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{
		Name: ptr("New user X"), Email: ptr("x@mail.test"), Password: ptr("Abcd1234"), Roles: []string{"USER"},
	})
	assert.NoError(t, err)
}

func TestValidateCreate_NombreYEmailVaciosEnOrden(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{
		Name: ptr(""), Email: ptr(""), Password: ptr("Abcd1234"),
	})
	assert.Equal(t, []string{domain.MsgNameRequired, domain.MsgEmailRequired}, messages(t, err))
}

func TestValidateCreate_AcumulaTodosLosCampos(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{
		Name:     ptr("A"),
		Email:    ptr("no-es-email"),
		Password: ptr("abcdefgh"),
		Roles:    []string{"ROOT", "USER", "GOD"},
	})
	assert.Equal(t, []string{
		domain.MsgNameTooShort,
		domain.MsgEmailInvalid,
		domain.MsgPasswordWeak,
		domain.MsgRoleNotSupported + "ROOT",
		domain.MsgRoleNotSupported + "GOD",
	}, messages(t, err))
}

func TestValidateCreate_Unicidad(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{
		Name: ptr("User 1"), Email: ptr("contact2@testmail.com"), Password: ptr("Abcd1234"),
	})
	assert.Equal(t, []string{domain.MsgNameTaken, domain.MsgEmailTaken}, messages(t, err))
}

func TestValidateCreate_LongitudDeCampos(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{
		Name:     ptr(strings.Repeat("n", 256)),
		Email:    ptr(strings.Repeat("e", 250) + "@x.com"),
		Password: ptr("Ab1"),
	})
	assert.Equal(t, []string{domain.MsgNameTooLong, domain.MsgEmailTooLong, domain.MsgPasswordLength}, messages(t, err))
}

func TestValidateCreate_SinPassword(t *testing.T) {
	v := newValidator(t)
	err := v.ValidateCreate(context.Background(), &dto.UserPayload{Name: ptr("Nuevo"), Email: ptr("n@mail.test")})
	assert.Equal(t, []string{domain.MsgPasswordRequired}, messages(t, err))
}

func TestValidateUpdate_SoloCamposPresentes(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	assert.NoError(t, v.ValidateUpdate(ctx, fixtures.UserID(2), &dto.UserPayload{Email: ptr("nuevo@mail.test")}))
	assert.NoError(t, v.ValidateUpdate(ctx, fixtures.UserID(2), &dto.UserPayload{Name: ptr("User 2")}),
		"el propio usuario no cuenta para la unicidad")

	err := v.ValidateUpdate(ctx, fixtures.UserID(2), &dto.UserPayload{Name: ptr("User 1"), Roles: []string{"X"}})
	assert.Equal(t, []string{domain.MsgNameTaken, domain.MsgRoleNotSupported + "X"}, messages(t, err))
}

func TestStruct_TokenRequest(t *testing.T) {
	assert.Error(t, validation.Struct(dto.TokenRequest{Email: "no-email", Password: "x"}))
	assert.NoError(t, validation.Struct(dto.TokenRequest{Email: "a@b.co", Password: "x"}))
}
