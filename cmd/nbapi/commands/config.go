package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
	"github.com/fivetwenty-io/nbapi/pkg/nbclient"
)

// Viper keys. Flags with dashes are bound to these underscore keys so that the
// NBAPI_* environment variables resolve to the same settings.
const (
	keyNation    = "nation"
	keyToken     = "token"
	keyBaseURL   = "base_url"
	keyOutput    = "output"
	keyVerifySSL = "verify_ssl"
	keyVerbose   = "verbose"
)

// ConfigDirName is the directory under the user's home holding config.yml.
const ConfigDirName = ".nbapi"

// Config represents the CLI configuration.
type Config struct {
	Nation    string `json:"nation,omitempty"   yaml:"nation,omitempty"`
	Token     string `json:"token,omitempty"    yaml:"token,omitempty"`
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"   yaml:"output,omitempty"`
	VerifySSL bool   `json:"verify_ssl"         yaml:"verify_ssl"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the nbapi configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the token masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config
			if masked.Token != "" {
				masked.Token = constants.MaskedSecret
			}

			return renderOutput(cmd.OutOrStdout(), masked, []string{"Property", "Value"}, func(table *tablewriter.Table) {
				_ = table.Append("Nation", valueOrNA(config.Nation))
				_ = table.Append("Token", maskSecret(config.Token))
				_ = table.Append("Base URL", valueOrNA(config.BaseURL))
				_ = table.Append("Output", valueOrNA(config.Output))
				_ = table.Append("Verify SSL", strconv.FormatBool(config.VerifySSL))
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of: nation, token, base_url, output, verify_ssl",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove one of: nation, token, base_url, output, verify_ssl",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyNation:
		config.Nation = value
	case keyToken:
		if value == "" {
			return constants.ErrEmptyToken
		}

		config.Token = value
	case keyBaseURL:
		config.BaseURL = value
	case keyOutput:
		config.Output = value
	case keyVerifySSL:
		config.VerifySSL = value == constants.BooleanTrue || value == "1"
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyNation:
		config.Nation = ""
	case keyToken:
		config.Token = ""
	case keyBaseURL:
		config.BaseURL = ""
	case keyOutput:
		config.Output = ""
	case keyVerifySSL:
		config.VerifySSL = false
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, nil)

	return nil
}

func loadConfig() *Config {
	return &Config{
		Nation:    viper.GetString(keyNation),
		Token:     viper.GetString(keyToken),
		BaseURL:   viper.GetString(keyBaseURL),
		Output:    viper.GetString(keyOutput),
		VerifySSL: viper.GetBool(keyVerifySSL),
	}
}

// configFilePath returns the file in use, or ~/.nbapi/config.yml when none was read.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

// readConfigFile returns what is stored in the config file, without flag or
// environment overrides. A missing file yields an empty Config.
func readConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configFile) // #nosec G304 -- path comes from --config or the home directory
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// buildClientConfig turns the effective settings into a library config.
func buildClientConfig(config *Config) (*nationbuilder.Config, error) {
	if config.Nation == "" && config.BaseURL == "" {
		return nil, constants.ErrNoNationConfigured
	}

	if config.Token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	verbose := viper.GetBool(keyVerbose)

	return &nationbuilder.Config{
		Nation:      config.Nation,
		BaseURL:     config.BaseURL,
		AccessToken: config.Token,
		VerifyTLS:   config.VerifySSL,
		HTTPTimeout: constants.DefaultHTTPTimeout,
		Debug:       verbose,
		Logger:      nationbuilder.DefaultLogger(verbose),
	}, nil
}

// CreateClient builds a client from flags, environment and the config file.
func CreateClient() (nationbuilder.Client, error) {
	clientConfig, err := buildClientConfig(loadConfig())
	if err != nil {
		return nil, err
	}

	client, err := nbclient.New(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
