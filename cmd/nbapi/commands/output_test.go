package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nbapi/pkg/nationbuilder"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code nationbuilder.ContactCode
		want string
	}{
		{"display name wins", nationbuilder.ContactCode{Name: "Door knock", APIName: "door_knock"}, "Door knock"},
		{"title-cased api name", nationbuilder.ContactCode{APIName: "door_knock"}, "Door Knock"},
		{"single word", nationbuilder.ContactCode{APIName: "email"}, "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, displayName(tt.code))
		})
	}
}

func TestValueOrNAAndMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", valueOrNA(""))
	assert.Equal(t, "x", valueOrNA("x"))
	assert.Equal(t, "N/A", maskSecret(""))
	assert.Equal(t, "***", maskSecret("secret"))
}

func TestRenderPeople(t *testing.T) {
	people := []nationbuilder.Person{{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}}

	t.Run("json", func(t *testing.T) {
		useTestConfig(t)
		viper.Set(keyOutput, "json")

		var out bytes.Buffer
		require.NoError(t, renderPeople(&out, people))
		assert.Contains(t, out.String(), `"first_name": "Ada"`)
		assert.Contains(t, out.String(), `"id": 7`)
	})

	t.Run("yaml", func(t *testing.T) {
		useTestConfig(t)
		viper.Set(keyOutput, "yaml")

		var out bytes.Buffer
		require.NoError(t, renderPeople(&out, people))
		assert.Contains(t, out.String(), "first_name: Ada")
	})

	t.Run("table", func(t *testing.T) {
		useTestConfig(t)
		viper.Set(keyOutput, "table")

		var out bytes.Buffer
		require.NoError(t, renderPeople(&out, people))
		assert.Contains(t, out.String(), "Ada Lovelace")
		assert.Contains(t, out.String(), "ada@example.org")
	})

	t.Run("empty table", func(t *testing.T) {
		useTestConfig(t)
		viper.Set(keyOutput, "table")

		var out bytes.Buffer
		require.NoError(t, renderPeople(&out, nil))
		assert.Equal(t, "No people found\n", out.String())
	})
}
