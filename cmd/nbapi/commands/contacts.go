package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// NewContactsCommand creates the contacts command group
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage contacts",
		Long:    "Log contacts with people and browse contact settings",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsLogCommand())
	cmd.AddCommand(newContactsTypesCommand())
	cmd.AddCommand(newContactsMethodsCommand())
	cmd.AddCommand(newContactsStatusesCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "list PERSON_ID",
		Short: "List the contacts of a person",
		Long:  "List every contact logged for a person",
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

			contacts, err := client.Contacts().ListForPerson(context.Background(), id, perPage)
			if err != nil {
				return fmt.Errorf("failed to list contacts: %w", err)
			}

			header := []string{"Sender", "Method", "Type", "Status", "Note"}

			return renderOutput(cmd.OutOrStdout(), contacts, header, func(table *tablewriter.Table) {
				for _, contact := range contacts {
					_ = table.Append(strconv.Itoa(contact.SenderID), contact.Method, strconv.Itoa(contact.TypeID),
						valueOrNA(contact.Status), valueOrNA(contact.Note))
				}
			})
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}

// ContactsLogOptions holds the options for logging a contact.
type ContactsLogOptions struct {
	SenderID      int
	Method        string
	TypeID        int
	Status        string
	BroadcasterID int
	Note          string
}

func (o ContactsLogOptions) request() *nationbuilder.ContactRequest {
	request := &nationbuilder.ContactRequest{
		SenderID: o.SenderID,
		Method:   o.Method,
		TypeID:   o.TypeID,
		Status:   o.Status,
		Note:     o.Note,
	}

	if o.BroadcasterID > 0 {
		broadcasterID := o.BroadcasterID
		request.BroadcasterID = &broadcasterID
	}

	return request
}

func newContactsLogCommand() *cobra.Command {
	var opts ContactsLogOptions

	cmd := &cobra.Command{
		Use:   "log PERSON_ID",
		Short: "Log a contact",
		Long:  "Record a contact with a person",
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

			contact, err := client.Contacts().Log(context.Background(), id, opts.request())
			if err != nil {
				return fmt.Errorf("failed to log contact: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), contact, []string{"Property", "Value"}, func(table *tablewriter.Table) {
				_ = table.Append("Recipient", strconv.Itoa(contact.RecipientID))
				_ = table.Append("Sender", strconv.Itoa(contact.SenderID))
				_ = table.Append("Method", contact.Method)
				_ = table.Append("Type", strconv.Itoa(contact.TypeID))
				_ = table.Append("Status", valueOrNA(contact.Status))
			})
		},
	}

	cmd.Flags().IntVar(&opts.SenderID, "sender", 0, "ID of the person who made the contact")
	cmd.Flags().StringVar(&opts.Method, "method", "", "contact method api_name, e.g. door_knock")
	cmd.Flags().IntVar(&opts.TypeID, "type", 0, "contact type ID")
	cmd.Flags().StringVar(&opts.Status, "status", "", "contact status api_name")
	cmd.Flags().IntVar(&opts.BroadcasterID, "broadcaster", 0, "broadcaster ID the contact was made for")
	cmd.Flags().StringVar(&opts.Note, "note", "", "free-form note")

	_ = cmd.MarkFlagRequired("sender")
	_ = cmd.MarkFlagRequired("method")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newContactsTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List contact types",
		Long:  "List the contact types defined in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			types, err := client.Contacts().ListTypes(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list contact types: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), types, []string{"ID", "Name"}, func(table *tablewriter.Table) {
				for _, contactType := range types {
					_ = table.Append(strconv.Itoa(contactType.ID), contactType.Name)
				}
			})
		},
	}

	cmd.AddCommand(newContactsTypesCreateCommand())
	cmd.AddCommand(newContactsTypesRenameCommand())
	cmd.AddCommand(newContactsTypesDeleteCommand())

	return cmd
}

func newContactsTypesCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a contact type",
		Long:  "Create a new contact type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			contactType, err := client.Contacts().CreateType(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create contact type: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created contact type %q (ID %d)\n", contactType.Name, contactType.ID)

			return nil
		},
	}
}

func newContactsTypesRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename TYPE_ID NAME",
		Short: "Rename a contact type",
		Long:  "Change the name of a contact type",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidTypeID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			contactType, err := client.Contacts().UpdateType(context.Background(), id, args[1])
			if err != nil {
				return fmt.Errorf("failed to rename contact type: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed contact type %d to %q\n", id, contactType.Name)

			return nil
		},
	}
}

func newContactsTypesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TYPE_ID",
		Short: "Delete a contact type",
		Long:  "Delete a contact type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidTypeID)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Contacts().DeleteType(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete contact type: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact type %d\n", id)

			return nil
		},
	}
}

func newContactsMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List contact methods",
		Long:  "List the contact methods available in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			methods, err := client.Contacts().ListMethods(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list contact methods: %w", err)
			}

			return renderCodes(cmd.OutOrStdout(), methods)
		},
	}
}

func newContactsStatusesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List contact statuses",
		Long:  "List the contact statuses available in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			statuses, err := client.Contacts().ListStatuses(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list contact statuses: %w", err)
			}

			return renderCodes(cmd.OutOrStdout(), statuses)
		},
	}
}
