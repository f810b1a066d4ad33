package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// NewPeopleCommand creates the people command group
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "Manage people",
		Long:    "Find, list and update people records in the nation",
	}

	cmd.AddCommand(newPeopleGetCommand())
	cmd.AddCommand(newPeopleMeCommand())
	cmd.AddCommand(newPeopleMatchCommand())
	cmd.AddCommand(newPeopleSearchCommand())
	cmd.AddCommand(newPeopleListCommand())
	cmd.AddCommand(newPeopleNearbyCommand())
	cmd.AddCommand(newPeopleCreateCommand())
	cmd.AddCommand(newPeopleDeleteCommand())
	cmd.AddCommand(newPeopleRegisterCommand())
	cmd.AddCommand(newPeopleVolunteerCommand())

	return cmd
}

func parseID(value string, invalid error) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", invalid, value)
	}

	return id, nil
}

func newPeopleGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PERSON_ID",
		Short: "Get person details",
		Long:  "Display the full record of a person",
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

			person, err := client.People().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get person: %w", err)
			}

			return renderPerson(cmd.OutOrStdout(), person)
		},
	}
}

func newPeopleMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the token owner",
		Long:  "Display the record of the person who owns the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			person, err := client.People().Me(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get token owner: %w", err)
			}

			return renderPerson(cmd.OutOrStdout(), person)
		},
	}
}

// PeopleMatchOptions holds the match criteria flags.
type PeopleMatchOptions struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Mobile    string
}

func (o PeopleMatchOptions) criteria() map[string]string {
	criteria := map[string]string{}

	for key, value := range map[string]string{
		"email":      o.Email,
		"first_name": o.FirstName,
		"last_name":  o.LastName,
		"phone":      o.Phone,
		"mobile":     o.Mobile,
	} {
		if value != "" {
			criteria[key] = value
		}
	}

	return criteria
}

func newPeopleMatchCommand() *cobra.Command {
	var opts PeopleMatchOptions

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a single person",
		Long:  "Find the one person matching every given criterion exactly",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := opts.criteria()
			if len(criteria) == 0 {
				return constants.ErrMatchCriteriaEmpty
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			// Email-only lookups tolerate no match instead of failing.
			if len(criteria) == 1 && opts.Email != "" {
				person, err := client.People().GetByEmail(ctx, opts.Email)
				if err != nil {
					return fmt.Errorf("failed to match person: %w", err)
				}

				if person == nil {
					return fmt.Errorf("%w: %s", constants.ErrNoPersonMatched, opts.Email)
				}

				return renderPerson(cmd.OutOrStdout(), person)
			}

			person, err := client.People().Match(ctx, criteria)
			if err != nil {
				return fmt.Errorf("failed to match person: %w", err)
			}

			return renderPerson(cmd.OutOrStdout(), person)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&opts.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&opts.Mobile, "mobile", "", "mobile number")

	return cmd
}

func newPeopleSearchCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "search KEY=VALUE...",
		Short: "Search people",
		Long:  "Find every person with the given attributes, e.g. city=Wellington state=WGN",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := parseCriteria(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			people, err := client.People().Search(context.Background(), criteria, perPage)
			if err != nil {
				return fmt.Errorf("failed to search people: %w", err)
			}

			return renderPeople(cmd.OutOrStdout(), people)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}

func parseCriteria(args []string) (map[string]string, error) {
	criteria := make(map[string]string, len(args))

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %s", constants.ErrInvalidCriterion, arg)
		}

		criteria[key] = value
	}

	return criteria, nil
}

// PeopleListOptions holds the options for listing people.
type PeopleListOptions struct {
	AllPages bool
	Page     int
	PerPage  int
}

func newPeopleListCommand() *cobra.Command {
	var opts PeopleListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Long:  "List abbreviated records of the people in the nation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if opts.AllPages {
				people, err := client.People().ListAll(ctx, opts.PerPage)
				if err != nil {
					return fmt.Errorf("failed to list people: %w", err)
				}

				return renderPeople(cmd.OutOrStdout(), people)
			}

			page, err := client.People().List(ctx, nationbuilder.NewPageParams().WithPage(opts.Page).WithPerPage(opts.PerPage))
			if err != nil {
				return fmt.Errorf("failed to list people: %w", err)
			}

			err = renderPeople(cmd.OutOrStdout(), page.Results)
			if err != nil {
				return err
			}

			if page.HasNext() && isTableOutput() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nShowing page %d of %d. Use --all to fetch all pages.\n",
					page.Page, page.TotalPages)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", constants.FirstPage, "page to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

// PeopleNearbyOptions holds the options for a radius search.
type PeopleNearbyOptions struct {
	Distance   float64
	Kilometers bool
	PerPage    int
}

func newPeopleNearbyCommand() *cobra.Command {
	var opts PeopleNearbyOptions

	cmd := &cobra.Command{
		Use:   "nearby LAT,LNG",
		Short: "Find people near a location",
		Long:  "List every person within --distance of the coordinate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, lng, err := parseLocation(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			people, err := client.People().Nearby(context.Background(), &nationbuilder.NearbyQuery{
				Latitude:   lat,
				Longitude:  lng,
				Distance:   opts.Distance,
				Kilometers: opts.Kilometers,
				PerPage:    opts.PerPage,
			})
			if err != nil {
				return fmt.Errorf("failed to find nearby people: %w", err)
			}

			return renderPeople(cmd.OutOrStdout(), people)
		},
	}

	cmd.Flags().Float64Var(&opts.Distance, "distance", 1, "search radius")
	cmd.Flags().BoolVar(&opts.Kilometers, "km", false, "distance is in kilometres instead of miles")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.DefaultPageSize, "results fetched per request")

	return cmd
}

func parseLocation(value string) (float64, float64, error) {
	latText, lngText, found := strings.Cut(value, ",")
	if !found {
		return 0, 0, fmt.Errorf("%w: %s", constants.ErrInvalidLocation, value)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", constants.ErrInvalidLocation, value)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", constants.ErrInvalidLocation, value)
	}

	return lat, lng, nil
}

func newPeopleCreateCommand() *cobra.Command {
	var (
		email     string
		firstName string
		lastName  string
		phone     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a person",
		Long:  "Create a person. A name, phone number or email is required",
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &nationbuilder.PersonRequest{
				Email:     optionalString(email),
				FirstName: optionalString(firstName),
				LastName:  optionalString(lastName),
				Phone:     optionalString(phone),
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			person, err := client.People().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create person: %w", err)
			}

			return renderPerson(cmd.OutOrStdout(), person)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")

	return cmd
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func newPeopleDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PERSON_ID",
		Short: "Delete a person",
		Long:  "Delete a person record from the nation",
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

			err = client.People().Delete(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to delete person: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted person %d\n", id)

			return nil
		},
	}
}

func newPeopleRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register PERSON_ID",
		Short: "Send the registration email",
		Long:  "Ask NationBuilder to send the registration email to a person",
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

			err = client.People().Register(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to register person: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registration email sent to person %d\n", id)

			return nil
		},
	}
}

func newPeopleVolunteerCommand() *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "volunteer PERSON_ID",
		Short: "Mark a person as a volunteer",
		Long:  "Mark a person as a volunteer, or clear the flag with --unset",
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

			person, err := client.People().SetVolunteer(context.Background(), id, !unset)
			if err != nil {
				return fmt.Errorf("failed to update person: %w", err)
			}

			return renderPerson(cmd.OutOrStdout(), person)
		},
	}

	cmd.Flags().BoolVar(&unset, "unset", false, "clear the volunteer flag")

	return cmd
}
