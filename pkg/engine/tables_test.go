package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cablecheck/pkg/schema"
)

func TestIsNominalCSA(t *testing.T) {
	for _, csa := range []float64{1.5, 2.5, 10, 120, 630} {
		assert.True(t, IsNominalCSA(csa), "%g", csa)
	}
	for _, csa := range []float64{0.5, 3, 13, 700} {
		assert.False(t, IsNominalCSA(csa), "%g", csa)
	}
}

func TestMinThickness(t *testing.T) {
	t.Run("Should band sizes up to the listed maximum", func(t *testing.T) {
		min, ok := MinThickness(schema.InsulationPVC, 10)
		require.True(t, ok)
		assert.Equal(t, 1.0, min)

		min, ok = MinThickness(schema.InsulationPVC, 2.5)
		require.True(t, ok)
		assert.Equal(t, 0.8, min)

		min, ok = MinThickness(schema.InsulationXLPE, 50)
		require.True(t, ok)
		assert.Equal(t, 1.0, min)

		min, ok = MinThickness(schema.InsulationEPR, 630)
		require.True(t, ok)
		assert.Equal(t, 2.4, min)
	})

	t.Run("Should not cover sizes beyond the table", func(t *testing.T) {
		_, ok := MinThickness(schema.InsulationPVC, 1000)
		assert.False(t, ok)
	})

	t.Run("Should not cover unknown compounds", func(t *testing.T) {
		_, ok := MinThickness("PE", 10)
		assert.False(t, ok)
	})
}
