package serverutils

import (
	"testing"

	"traderhub-be/internal/dto"

	"github.com/stretchr/testify/assert"
)

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:     "João da Silva",
		Email:    "joao@example.com",
		Password: "supersecret1",
		Cpf:      "52998224725",
		Phone:    "11987654321",
		Cep:      "01310-100",
		Street:   "Av. Paulista",
		Number:   "1000",
		City:     "São Paulo",
		State:    "SP",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid registration passes", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(validRegistration()))
	})

	t.Run("bad cpf fails", func(t *testing.T) {
		req := validRegistration()
		req.Cpf = "12345678900"
		err := ValidateRequest(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cpf")
	})

	t.Run("bad cep fails", func(t *testing.T) {
		req := validRegistration()
		req.Cep = "1310"
		err := ValidateRequest(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cep")
	})

	t.Run("missing email fails", func(t *testing.T) {
		req := validRegistration()
		req.Email = ""
		err := ValidateRequest(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email")
	})
}
