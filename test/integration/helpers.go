//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Nation     string
	Token      string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Nation:     os.Getenv("NBAPI_NATION"),
		Token:      os.Getenv("NBAPI_TOKEN"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("NBAPI_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the nbapi binary
func getBinaryPath() string {
	if path := os.Getenv("NBAPI_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../nbapi",
		"./nbapi",
		"../nbapi",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "nbapi"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Nation == "" || config.Token == "" {
		t.Skip("NBAPI_NATION or NBAPI_TOKEN not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("nbapi binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the nbapi binary against the configured nation with a
// throwaway config file.
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: t.TempDir() + "/config.yml",
		t:          t,
	}
}

// Run executes an nbapi command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...) // #nosec G204 -- test binary path
	cmd.Env = append(os.Environ(),
		"NBAPI_NATION="+runner.config.Nation,
		"NBAPI_TOKEN="+runner.config.Token,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique tag or resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupTag removes a tag from a person, logging failures
func (runner *CommandRunner) CleanupTag(personID, tag string) {
	stdout, stderr, err := runner.Run("tags", "remove", personID, tag)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for tag %s on %s: %s\nStderr: %s", tag, personID, stdout, stderr)
	}
}
