package main

import (
	"testing"

	"folio/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthorizer(t *testing.T) {
	a, err := newAuthorizer(authConfig{mode: "none"})
	require.NoError(t, err)
	assert.IsType(t, auth.Open{}, a)

	_, err = newAuthorizer(authConfig{mode: "basic"})
	assert.Error(t, err)

	a, err = newAuthorizer(authConfig{mode: "basic", basic: basicConfig{user: "admin", passHash: "$2a$04$x"}})
	require.NoError(t, err)
	assert.IsType(t, &auth.Basic{}, a)

	_, err = newAuthorizer(authConfig{mode: "token"})
	assert.Error(t, err)

	a, err = newAuthorizer(authConfig{mode: "token", token: tokenConfig{secret: "s", iss: "folio", aud: "folio"}})
	require.NoError(t, err)
	assert.IsType(t, &auth.Token{}, a)

	_, err = newAuthorizer(authConfig{mode: "oauth"})
	assert.Error(t, err)
}
