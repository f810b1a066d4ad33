package commands

import (
	"net/http"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nbapi/internal/constants"
)

func TestLoginCommandSavesValidatedToken(t *testing.T) {
	server := useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/me", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]interface{}{
			"person": map[string]interface{}{"id": 1, "first_name": "Ada", "last_name": "Lovelace"},
		})
	})

	out, err := executeCommand(NewLoginCommand())
	require.NoError(t, err)
	assert.Equal(t, "Logged in to "+server.URL+" as Ada Lovelace (ID 1)\n", out)

	data, err := os.ReadFile(viper.ConfigFileUsed())
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "test-token", saved.Token)
	assert.Equal(t, server.URL, saved.BaseURL)
}

func TestLoginCommandRejectsInvalidToken(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"code": "unauthorized"})
	})

	_, err := executeCommand(NewLoginCommand())
	require.Error(t, err)

	_, statErr := os.Stat(viper.ConfigFileUsed())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoginCommandRequiresNation(t *testing.T) {
	useTestConfig(t)

	_, err := executeCommand(NewLoginCommand())
	require.ErrorIs(t, err, constants.ErrNoNationConfigured)
}

func TestLogoutCommand(t *testing.T) {
	configFile := useTestConfig(t)
	require.NoError(t, os.WriteFile(configFile, []byte("nation: acme\ntoken: secret\n"), constants.ConfigFilePerm))

	out, err := executeCommand(NewLogoutCommand())
	require.NoError(t, err)
	assert.Equal(t, "Logged out\n", out)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "acme", saved.Nation)
	assert.Empty(t, saved.Token)
}

func TestLoginCommandRejectsMissingPerson(t *testing.T) {
	useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/me", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]interface{}{})
	})

	var err error

	require.NotPanics(t, func() {
		_, err = executeCommand(NewLoginCommand())
	})
	require.ErrorIs(t, err, constants.ErrEmptyResponse)

	_, statErr := os.Stat(viper.ConfigFileUsed())
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoginCommandKeepsStoredSettings(t *testing.T) {
	server := useTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]interface{}{"person": map[string]interface{}{"id": 1}})
	})

	configFile := viper.ConfigFileUsed()
	require.NoError(t, os.WriteFile(configFile, []byte("output: yaml\nverify_ssl: true\n"), constants.ConfigFilePerm))

	_, err := executeCommand(NewLoginCommand())
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, Config{BaseURL: server.URL, Token: "test-token", Output: "yaml", VerifySSL: true}, saved)
}

func TestVersionCommand(t *testing.T) {
	useTestConfig(t)
	viper.Set(keyOutput, "json")

	out, err := executeCommand(NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "1.2.3"`)
	assert.Contains(t, out, `"commit": "abc123"`)
}
