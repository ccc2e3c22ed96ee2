package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cablecheck/pkg/schema"
)

func TestReconcile(t *testing.T) {
	t.Run("Should prefer a valid model value", func(t *testing.T) {
		extracted := schema.FieldSet{VoltageKV: numPtr(1.0)}
		guess := map[string]any{"voltage_kv": 0.6}

		fields := Reconcile(guess, extracted)
		require.NotNil(t, fields.VoltageKV)
		assert.Equal(t, 0.6, *fields.VoltageKV)
	})

	t.Run("Should keep the extracted value when the model value is invalid", func(t *testing.T) {
		extracted := schema.FieldSet{VoltageKV: numPtr(11)}
		guess := map[string]any{"voltage_kv": "eleven kilovolts"}

		fields := Reconcile(guess, extracted)
		require.NotNil(t, fields.VoltageKV)
		assert.Equal(t, 11.0, *fields.VoltageKV)
	})

	t.Run("Should treat null model values as absent", func(t *testing.T) {
		extracted := schema.FieldSet{ConductorMaterial: strPtr(schema.ConductorCopper)}
		guess := map[string]any{"conductor_material": nil}

		fields := Reconcile(guess, extracted)
		require.NotNil(t, fields.ConductorMaterial)
		assert.Equal(t, schema.ConductorCopper, *fields.ConductorMaterial)
	})

	t.Run("Should leave fields absent when neither source has them", func(t *testing.T) {
		fields := Reconcile(map[string]any{}, schema.FieldSet{})
		assert.Equal(t, schema.FieldSet{}, fields)
	})

	t.Run("Should accept model values under alias keys", func(t *testing.T) {
		fields := Reconcile(map[string]any{"csa": 16}, schema.FieldSet{})
		require.NotNil(t, fields.CSAMM2)
		assert.Equal(t, 16.0, *fields.CSAMM2)
	})

	t.Run("Should prefer the canonical key over an alias", func(t *testing.T) {
		guess := map[string]any{"csa_mm2": 10, "csa": 25}
		for i := 0; i < 10; i++ {
			fields := Reconcile(guess, schema.FieldSet{})
			require.NotNil(t, fields.CSAMM2)
			assert.Equal(t, 10.0, *fields.CSAMM2)
		}
	})

	t.Run("Should coerce model values into schema types", func(t *testing.T) {
		guess := map[string]any{
			"voltage_kv":         "0.6",
			"conductor_class":    2.0,
			"conductor_material": "copper",
		}
		fields := Reconcile(guess, schema.FieldSet{})
		require.NotNil(t, fields.VoltageKV)
		assert.Equal(t, 0.6, *fields.VoltageKV)
		require.NotNil(t, fields.ConductorClass)
		assert.Equal(t, "Class 2", *fields.ConductorClass)
		require.NotNil(t, fields.ConductorMaterial)
		assert.Equal(t, schema.ConductorCopper, *fields.ConductorMaterial)
	})

	t.Run("Should ignore keys outside the schema", func(t *testing.T) {
		guess := map[string]any{"sheath_material": "PE", "cores": 4}
		assert.Equal(t, schema.FieldSet{}, Reconcile(guess, schema.FieldSet{}))
	})

	t.Run("Should pass the extraction through with no guess at all", func(t *testing.T) {
		extracted := fullDesign()
		assert.Equal(t, extracted, Reconcile(nil, extracted))
	})
}
