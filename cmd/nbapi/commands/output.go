package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nbapi/internal/constants"
	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

// renderOutput writes data in the configured output format. fillTable is only used
// for table output and may append rows to the table it is given.
func renderOutput(writer io.Writer, data interface{}, header []string, fillTable func(*tablewriter.Table)) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode output as YAML: %w", err)
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(writer)
		table.Header(toAnySlice(header)...)
		fillTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func isTableOutput() bool {
	output := viper.GetString("output")

	return output != constants.FormatJSON && output != constants.FormatYAML
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

func renderPeople(writer io.Writer, people []nationbuilder.Person) error {
	if len(people) == 0 && isTableOutput() {
		_, _ = fmt.Fprintln(writer, "No people found")

		return nil
	}

	return renderOutput(writer, people, []string{"ID", "Name", "Email", "Volunteer"}, func(table *tablewriter.Table) {
		for _, person := range people {
			_ = table.Append(strconv.Itoa(person.ID), valueOrNA(person.FullName()), valueOrNA(person.Email),
				strconv.FormatBool(person.IsVolunteer))
		}
	})
}

func renderPerson(writer io.Writer, person *nationbuilder.Person) error {
	return renderOutput(writer, person, []string{"Property", "Value"}, func(table *tablewriter.Table) {
		_ = table.Append("ID", strconv.Itoa(person.ID))
		_ = table.Append("Name", valueOrNA(person.FullName()))
		_ = table.Append("Email", valueOrNA(person.Email))
		_ = table.Append("Phone", valueOrNA(person.Phone))
		_ = table.Append("Mobile", valueOrNA(person.Mobile))
		_ = table.Append("Employer", valueOrNA(person.Employer))
		_ = table.Append("Volunteer", strconv.FormatBool(person.IsVolunteer))

		if person.RecruiterID != nil {
			_ = table.Append("Recruiter ID", strconv.Itoa(*person.RecruiterID))
		}

		if len(person.Tags) > 0 {
			_ = table.Append("Tags", strings.Join(person.Tags, ", "))
		}
	})
}

func renderCodes(writer io.Writer, codes []nationbuilder.ContactCode) error {
	return renderOutput(writer, codes, []string{"Name", "API Name"}, func(table *tablewriter.Table) {
		for _, code := range codes {
			_ = table.Append(displayName(code), code.APIName)
		}
	})
}

// displayName falls back to a title-cased api_name when the display name is missing.
func displayName(code nationbuilder.ContactCode) string {
	if code.Name != "" {
		return code.Name
	}

	return cases.Title(language.English).String(strings.ReplaceAll(code.APIName, "_", " "))
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func maskSecret(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return constants.MaskedSecret
}
