package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nbapi/internal/constants"
)

// NewListsCommand creates the lists command group
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Browse lists",
		Long:    "Browse saved lists and their members",
	}

	cmd.AddCommand(newListsListCommand())
	cmd.AddCommand(newListsPeopleCommand())

	return cmd
}

func newListsListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lists",
		Long:  "List every saved list in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			lists, err := client.Lists().List(context.Background(), perPage)
			if err != nil {
				return fmt.Errorf("failed to list lists: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), lists, []string{"ID", "Name", "Slug", "Count"}, func(table *tablewriter.Table) {
				for _, list := range lists {
					_ = table.Append(strconv.Itoa(list.ID), list.Name, list.Slug, strconv.Itoa(list.Count))
				}
			})
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}

func newListsPeopleCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "people LIST_ID",
		Short: "List the people on a list",
		Long:  "List every person on a saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidListID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			people, err := client.Lists().People(context.Background(), id, perPage)
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}

			return renderPeople(cmd.OutOrStdout(), people)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}
