package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@example.co.uk", "user+tag@domain.io"}
	invalid := []string{"", "plain", "missing@tld", "@x.com", "a b@x.com", "a@x .com"}

	for _, e := range valid {
		assert.True(t, ValidEmail(e), "expected %q to be valid", e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "expected %q to be invalid", e)
	}
}

func TestBeforeSaveHashesStagedPassword(t *testing.T) {
	u := User{Email: "a@x.com"}
	u.SetPassword("secret1")

	require.NoError(t, u.BeforeSave(nil))
	assert.NotEqual(t, "secret1", u.Password)
	assert.True(t, u.CheckPassword("secret1"))
	assert.False(t, u.CheckPassword("secret2"))
}

func TestBeforeSaveWithoutStagedPassword(t *testing.T) {
	u := User{Email: "a@x.com"}
	u.SetPassword("secret1")
	require.NoError(t, u.BeforeSave(nil))
	hash := u.Password

	// A save without SetPassword must not re-hash the stored hash.
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, hash, u.Password)
}
