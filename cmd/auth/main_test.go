package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aussiebroadwan/goalpost/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenSecret(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCommand("gen-secret", nil, &out))

	secret := strings.TrimSpace(out.String())
	require.Len(t, secret, 43)
}

func TestHashPassword(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCommand("hash-password", strings.NewReader("hunter2hunter2\n"), &out))

	hash := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(hash, "pbkdf2$"))
	require.NoError(t, cryptox.CheckPassword("hunter2hunter2", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	err := runCommand("hash-password", strings.NewReader("\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, errEmptyPassword)
}

func TestUnknownCommand(t *testing.T) {
	err := runCommand("frobnicate", nil, &bytes.Buffer{})
	require.ErrorContains(t, err, "frobnicate")
}
