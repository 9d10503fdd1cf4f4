// internal/utils/validator_test.go
package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username  string `validate:"required,username"`
	FirstName string `validate:"max=3"`
}

func TestUsernameRule(t *testing.T) {
	valid := []string{"demo", "potter_42", "ABCD"}
	invalid := []string{"abc", "has space", "dash-ed", "ünïcode"}

	for _, username := range valid {
		assert.NoError(t, ValidateStruct(&signupForm{Username: username}), username)
	}
	for _, username := range invalid {
		assert.Error(t, ValidateStruct(&signupForm{Username: username}), username)
	}
}

func TestGetValidationErrorsUnwraps(t *testing.T) {
	err := ValidateStruct(&signupForm{FirstName: "Patricia"})
	require.Error(t, err)

	details := GetValidationErrors(fmt.Errorf("validation failed: %w", err))
	require.Len(t, details, 2)
	assert.Equal(t, "username", details[0].Field)
	assert.Equal(t, "required", details[0].Tag)
	assert.Equal(t, "first_name", details[1].Field)
	assert.Equal(t, "max", details[1].Tag)

	assert.Empty(t, GetValidationErrors(errors.New("plain")))
	assert.Empty(t, GetValidationErrors(nil))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "first_name", toSnakeCase("FirstName"))
	assert.Equal(t, "url", toSnakeCase("URL"))
	assert.Equal(t, "item_id", toSnakeCase("ItemID"))
}
