package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
)

func TestEnvelope_FailYSucceed(t *testing.T) {
	env := dto.NewEnvelope(nil)
	assert.NotNil(t, env.Arguments)
	assert.False(t, env.Failed())

	env.Succeed(http.StatusOK, []string{"a"})
	assert.True(t, env.Status)
	assert.False(t, env.Failed())

	env.Fail(http.StatusBadRequest, "uno", "dos")
	assert.False(t, env.Status)
	assert.True(t, env.Failed())
	assert.Nil(t, env.Data)
	assert.Equal(t, []string{"uno", "dos"}, env.Errors)
}
