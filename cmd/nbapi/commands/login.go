package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nbclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to a nation",
		Long:  "Validate an access token against a nation and store both in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.Nation == "" && config.BaseURL == "" {
				return constants.ErrNoNationConfigured
			}

			if config.Token == "" {
				token, err := promptToken(cmd)
				if err != nil {
					return err
				}

				config.Token = token
			}

			clientConfig, err := buildClientConfig(config)
			if err != nil {
				return err
			}

			client, err := nbclient.New(clientConfig)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			me, err := client.People().Me(context.Background())
			if err != nil {
				return fmt.Errorf("failed to validate token: %w", err)
			}

			stored, err := readConfigFile()
			if err != nil {
				return err
			}

			stored.Nation = config.Nation
			stored.BaseURL = config.BaseURL
			stored.Token = config.Token

			err = saveConfigStruct(stored)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s (ID %d)\n",
				client.BaseURL(), valueOrNA(me.FullName()), me.ID)

			return nil
		},
	}
}

func promptToken(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Access token: ")

	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd())) // #nosec G115 -- file descriptors fit in int
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", constants.ErrEmptyToken
	}

	return token, nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Long:  "Remove the stored access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, keyToken)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
