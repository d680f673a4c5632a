package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, RegisterValidations(validate))
	return validate
}

func TestStrongPassword(t *testing.T) {
	validate := newValidator(t)

	cases := []struct {
		password string
		valid    bool
	}{
		{"Sup3r$ecret", true},
		{"Aa1!" + strings.Repeat("x", 46), true},
		{"short1A!", true},
		{"Aa1!bcd", false},                         // 7 chars
		{"Aa1!" + strings.Repeat("x", 47), false},  // 51 chars
		{"alllowercase1!", false},                  // no upper
		{"ALLUPPERCASE1!", false},                  // no lower
		{"NoDigitsHere!", false},                   // no digit
		{"NoSpecials123", false},                   // no special
	}
	for _, tc := range cases {
		err := validate.Var(tc.password, "strongpassword")
		if tc.valid {
			assert.NoError(t, err, "password %q", tc.password)
		} else {
			assert.Error(t, err, "password %q", tc.password)
		}
	}
}

func TestSignUpRequestValidation(t *testing.T) {
	validate := newValidator(t)

	valid := SignUpRequest{Name: "Alice", Email: "alice@example.com", Password: "Sup3r$ecret"}
	assert.NoError(t, validate.Struct(valid))

	invalid := SignUpRequest{Name: "A", Email: "not-an-email", Password: "weak"}
	err := validate.Struct(invalid)
	require.Error(t, err)

	fields := FieldErrors(err)
	byField := make(map[string]string, len(fields))
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "is too short", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Contains(t, byField["password"], "8-50 characters")
}

func TestUpdateUserRequestRoleValidation(t *testing.T) {
	validate := newValidator(t)

	assert.NoError(t, validate.Struct(UpdateUserRequest{Roles: []string{"USER", "SELLER"}}))
	assert.NoError(t, validate.Struct(UpdateUserRequest{Roles: []string{"ADMIN"}}))

	// Roles outside the closed set, and an empty set, are rejected.
	assert.Error(t, validate.Struct(UpdateUserRequest{Roles: []string{"SUPERUSER"}}))
	assert.Error(t, validate.Struct(UpdateUserRequest{Roles: []string{}}))
}

func TestFieldErrorsNonValidatorError(t *testing.T) {
	fields := FieldErrors(assert.AnError)
	require.Len(t, fields, 1)
	assert.Equal(t, "", fields[0].Field)
}
