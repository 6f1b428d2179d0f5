package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{value: "", want: ErrEmptyEmail},
		{value: "   ", want: ErrEmptyEmail},
		{value: "invalid", want: ErrInvalidEmailFormat},
		{value: "invalid@", want: ErrInvalidEmailFormat},
		{value: "invalid@test", want: ErrInvalidEmailFormat},
		{value: "@test.com", want: ErrInvalidEmailFormat},
		{value: "test@.com", want: ErrInvalidEmailFormat},
		{value: "test@example.", want: ErrInvalidEmailFormat},
		{value: "a@b@example.com", want: ErrInvalidEmailFormat},
		{value: "te st@example.com", want: ErrInvalidEmailFormat},
		{value: "test@example.com", want: nil},
		{value: "  test@example.com  ", want: nil},
		{value: "first.last@mail.example.org", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := ValidateEmail(tt.value)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateEmail_Messages(t *testing.T) {
	assert.EqualError(t, ValidateEmail(""), "Please enter your email")
	assert.EqualError(t, ValidateEmail("invalid@test"), "Please enter a valid email")
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword(""), ErrEmptyPassword)
	assert.ErrorIs(t, ValidatePassword("   "), ErrEmptyPassword)
	assert.NoError(t, ValidatePassword("1"))
	assert.NoError(t, ValidatePassword("Password123"))
	assert.EqualError(t, ValidatePassword(""), "Enter your password")
}

func TestValidateNames(t *testing.T) {
	assert.ErrorIs(t, ValidateFirstName(" "), ErrEmptyFirstName)
	assert.ErrorIs(t, ValidateLastName(""), ErrEmptyLastName)
	assert.NoError(t, ValidateFirstName("Anas"))
	assert.NoError(t, ValidateLastName("Najar"))
	assert.EqualError(t, ValidateFirstName(""), "Please enter your first name")
	assert.EqualError(t, ValidateLastName(""), "Enter your last name")
}

func TestValidateLogin_CollectsAllErrors(t *testing.T) {
	fe := ValidateLogin("", "")
	require.False(t, fe.Valid())
	assert.ErrorIs(t, fe.Get(FieldEmail), ErrEmptyEmail)
	assert.ErrorIs(t, fe.Get(FieldPassword), ErrEmptyPassword)

	fe = ValidateLogin("test@example.com", "Password123")
	assert.True(t, fe.Valid())
}

func TestValidateRegister_CollectsAllErrors(t *testing.T) {
	fe := ValidateRegister("", " ", "invalid", "")
	require.Len(t, fe, 4)
	assert.ErrorIs(t, fe.Get(FieldFirstName), ErrEmptyFirstName)
	assert.ErrorIs(t, fe.Get(FieldLastName), ErrEmptyLastName)
	assert.ErrorIs(t, fe.Get(FieldEmail), ErrInvalidEmailFormat)
	assert.ErrorIs(t, fe.Get(FieldPassword), ErrEmptyPassword)

	assert.True(t, ValidateRegister("Anas", "Najar", "test@gmail.com", "Anas1234").Valid())
}

func TestFieldErrors_ClearOnFocus(t *testing.T) {
	fe := ValidateLogin("", "")
	fe.Clear(FieldEmail)

	assert.NoError(t, fe.Get(FieldEmail))
	assert.ErrorIs(t, fe.Get(FieldPassword), ErrEmptyPassword)

	var empty FieldErrors
	assert.NoError(t, empty.Get(FieldEmail))
	assert.True(t, empty.Valid())
}
