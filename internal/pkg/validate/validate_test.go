package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwdSubject struct {
	Password string `validate:"required,min=8,passwd"`
}

func TestStruct_PasswdRule(t *testing.T) {
	assert.NoError(t, Struct(passwdSubject{Password: "password123"}))
	assert.ErrorContains(t, Struct(passwdSubject{Password: "passwordonly"}), "passwd")
	assert.ErrorContains(t, Struct(passwdSubject{Password: "12345678"}), "passwd")
}

func TestStruct_JoinsFieldErrors(t *testing.T) {
	type subject struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}
	err := Struct(subject{})
	assert.ErrorContains(t, err, "Email")
	assert.ErrorContains(t, err, "Name")
}
