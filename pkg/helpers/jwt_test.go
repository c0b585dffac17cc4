package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	m := NewJWTManager("unit-secret", time.Hour)

	tok, exp, err := m.Generate("user-1", "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestJWT_Expired(t *testing.T) {
	m := NewJWTManager("unit-secret", -time.Second)

	tok, _, err := m.Generate("user-1", "alice")
	require.NoError(t, err)

	_, err = m.Parse(tok)
	assert.Error(t, err)
}

func TestJWT_WrongKey(t *testing.T) {
	m := NewJWTManager("unit-secret", time.Hour)
	tok, _, err := m.Generate("user-1", "alice")
	require.NoError(t, err)

	other := NewJWTManager("different-secret", time.Hour)
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWT_TamperedSignature(t *testing.T) {
	m := NewJWTManager("unit-secret", time.Hour)
	tok, _, err := m.Generate("user-1", "alice")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Parse(tampered)
	assert.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	m := NewJWTManager("unit-secret", time.Hour)
	_, err := m.Parse("not.a.jwt")
	assert.Error(t, err)
}
