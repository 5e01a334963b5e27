//go:build unit

package password_test

import (
	"testing"

	"restro-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := password.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NoError(t, password.Verify(hashed, "password123"))
	assert.ErrorIs(t, password.Verify(hashed, "wrong-password"), password.ErrMismatch)
}

func TestEmptyInputs(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	hashed, err := password.Hash("password123")
	require.NoError(t, err)

	assert.ErrorIs(t, password.Verify(hashed, ""), password.ErrEmptyPassword)
	assert.ErrorIs(t, password.Verify("", "password123"), password.ErrEmptyPassword)
}
