package schemas

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestRegisterSchema_RequiredFields(t *testing.T) {
	v := validator.New()

	require.NoError(t, v.Struct(RegisterSchema{
		Username: "alice",
		Email:    "alice@x.com",
		Password: "pw1",
	}))

	// any missing field is rejected
	require.Error(t, v.Struct(RegisterSchema{Email: "alice@x.com", Password: "pw1"}))
	require.Error(t, v.Struct(RegisterSchema{Username: "alice", Password: "pw1"}))
	require.Error(t, v.Struct(RegisterSchema{Username: "alice", Email: "alice@x.com"}))

	require.Error(t, v.Struct(RegisterSchema{
		Username: "alice",
		Email:    "not-an-email",
		Password: "pw1",
	}))
}

func TestLoginSchema_RequiredFields(t *testing.T) {
	v := validator.New()

	require.NoError(t, v.Struct(LoginSchema{Email: "alice@x.com", Password: "pw1"}))
	require.Error(t, v.Struct(LoginSchema{Password: "pw1"}))
	require.Error(t, v.Struct(LoginSchema{Email: "alice@x.com"}))
}
