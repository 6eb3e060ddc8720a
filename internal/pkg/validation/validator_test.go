package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCpf(t *testing.T) {
	valid := []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	}
	for _, cpf := range valid {
		assert.True(t, IsValidCpf(cpf), cpf)
	}

	invalid := []string{
		"",
		"123",
		"529.982.247-26", // wrong check digit
		"111.111.111-11", // repeated digits
		"00000000000",
		"5299822472",   // 10 digits
		"529982247255", // 12 digits
		"abc.def.ghi-jk",
	}
	for _, cpf := range invalid {
		assert.False(t, IsValidCpf(cpf), cpf)
	}
}

type sample struct {
	Cpf   string `validate:"omitempty,cpf"`
	Cep   string `validate:"omitempty,cep"`
	Phone string `validate:"omitempty,brphone"`
}

func TestCustomRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(sample{Cpf: "529.982.247-25"}))
	assert.Error(t, v.Struct(sample{Cpf: "529.982.247-99"}))

	assert.NoError(t, v.Struct(sample{Cep: "01310-100"}))
	assert.NoError(t, v.Struct(sample{Cep: "01310100"}))
	assert.Error(t, v.Struct(sample{Cep: "1310-100"}))
	assert.Error(t, v.Struct(sample{Cep: "abcde-fgh"}))

	assert.NoError(t, v.Struct(sample{Phone: "(11) 98765-4321"}))
	assert.NoError(t, v.Struct(sample{Phone: "11987654321"}))
	assert.NoError(t, v.Struct(sample{Phone: "+55 11 98765-4321"}))
	assert.Error(t, v.Struct(sample{Phone: "1234"}))
}
