package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of the direct subcommands of cmd.
func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

// useTestConfig points viper at a config file in a temp dir and resets it afterwards.
// Tests using it must not run in parallel.
func useTestConfig(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

// useTestServer configures the CLI to talk to handler and returns the server.
func useTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	useTestConfig(t)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	viper.Set(keyBaseURL, server.URL)
	viper.Set(keyToken, "test-token")
	viper.Set(keyOutput, "json")

	return server
}

// executeCommand runs cmd with args and returns what it wrote to stdout.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		t.Errorf("encoding response: %v", err)
	}
}
