package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFields(t *testing.T) {
	t.Run("Should parse a bare JSON object", func(t *testing.T) {
		fields, err := ParseFields(`{"voltage_kv": 1, "conductor_material": "Cu"}`)
		require.NoError(t, err)
		assert.Equal(t, 1.0, fields["voltage_kv"])
		assert.Equal(t, "Cu", fields["conductor_material"])
	})

	t.Run("Should unwrap a fields envelope", func(t *testing.T) {
		fields, err := ParseFields(`{"fields": {"csa_mm2": 10}, "notes": "n/a"}`)
		require.NoError(t, err)
		assert.Equal(t, 10.0, fields["csa_mm2"])
		assert.NotContains(t, fields, "notes")
	})

	t.Run("Should strip code fences", func(t *testing.T) {
		raw := "```json\n{\"fields\": {\"standard\": \"IEC 60502-1\"}}\n```"
		fields, err := ParseFields(raw)
		require.NoError(t, err)
		assert.Equal(t, "IEC 60502-1", fields["standard"])
	})

	t.Run("Should tolerate surrounding prose", func(t *testing.T) {
		raw := "Here are the extracted parameters:\n{\"voltage_kv\": 11}\nLet me know if you need more."
		fields, err := ParseFields(raw)
		require.NoError(t, err)
		assert.Equal(t, 11.0, fields["voltage_kv"])
	})

	t.Run("Should keep nulls for the reconciler to skip", func(t *testing.T) {
		fields, err := ParseFields(`{"fields": {"standard": null, "csa_mm2": 10}}`)
		require.NoError(t, err)
		require.Contains(t, fields, "standard")
		assert.Nil(t, fields["standard"])
	})

	t.Run("Should reject replies without an object", func(t *testing.T) {
		for _, raw := range []string{"", "no json here", "[1, 2, 3]", "```json\n```"} {
			_, err := ParseFields(raw)
			assert.Error(t, err, raw)
		}
	})

	t.Run("Should reject malformed JSON", func(t *testing.T) {
		_, err := ParseFields(`{"voltage_kv": `)
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("IEC 60502-1, 0.6/1 kV, Cu")
	require.NoError(t, err)

	assert.Contains(t, prompt, "IEC 60502-1, 0.6/1 kV, Cu")
	for _, field := range []string{
		"standard", "voltage_kv", "conductor_material", "conductor_class",
		"csa_mm2", "insulation_material", "insulation_thickness_mm",
	} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "null")
}
