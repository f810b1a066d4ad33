package commands

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nbapi/internal/constants"
)

// NewTagsCommand creates the tags command group
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage tags",
		Long:    "List tags and tag or untag people",
	}

	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsPersonCommand())
	cmd.AddCommand(newTagsAddCommand())
	cmd.AddCommand(newTagsRemoveCommand())
	cmd.AddCommand(newTagsPeopleCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List every tag used in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background(), perPage)
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), tags, []string{"Tag"}, func(table *tablewriter.Table) {
				for _, tag := range tags {
					_ = table.Append(tag)
				}
			})
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}

func newTagsPersonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "person PERSON_ID",
		Short: "List the tags of a person",
		Long:  "List every tagging of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidPersonID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			taggings, err := client.Tags().PersonTags(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get tags: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), taggings, []string{"Tag", "Created"}, func(table *tablewriter.Table) {
				for _, tagging := range taggings {
					created := constants.NotAvailable
					if tagging.CreatedAt != nil {
						created = tagging.CreatedAt.Format("2006-01-02 15:04:05")
					}

					_ = table.Append(tagging.Tag, created)
				}
			})
		},
	}
}

func newTagsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add PERSON_ID TAG",
		Short: "Tag a person",
		Long:  "Add a tag to a person. Unknown tags are created",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidPersonID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Tags().Add(context.Background(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to add tag: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tagged person %d with %q\n", id, args[1])

			return nil
		},
	}
}

func newTagsRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove PERSON_ID TAG",
		Short: "Untag a person",
		Long:  "Remove a tag from a person",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidPersonID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Tags().Remove(context.Background(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to remove tag: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from person %d\n", args[1], id)

			return nil
		},
	}
}

func newTagsPeopleCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "people TAG",
		Short: "List people with a tag",
		Long:  "List every person carrying a tag. Tags are case sensitive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			people, err := client.Tags().PeopleByTag(context.Background(), args[0], perPage)
			if err != nil {
				return fmt.Errorf("failed to list tagged people: %w", err)
			}

			return renderPeople(cmd.OutOrStdout(), people)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}
