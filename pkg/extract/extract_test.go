package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/cablecheck/pkg/schema"
)

func TestExtractFullDesign(t *testing.T) {
	fs := Extract("IEC 60502-1, 0.6/1 kV, Cu Class 2, 10 sqmm, PVC insulation, 1 mm")

	require.NotNil(t, fs.Standard)
	assert.Equal(t, schema.StandardIEC605021, *fs.Standard)
	require.NotNil(t, fs.VoltageKV)
	assert.Equal(t, 1.0, *fs.VoltageKV)
	require.NotNil(t, fs.ConductorMaterial)
	assert.Equal(t, schema.ConductorCopper, *fs.ConductorMaterial)
	require.NotNil(t, fs.ConductorClass)
	assert.Equal(t, "Class 2", *fs.ConductorClass)
	require.NotNil(t, fs.CSAMM2)
	assert.Equal(t, 10.0, *fs.CSAMM2)
	require.NotNil(t, fs.InsulationMaterial)
	assert.Equal(t, schema.InsulationPVC, *fs.InsulationMaterial)
	require.NotNil(t, fs.InsulationThickness)
	assert.Equal(t, 1.0, *fs.InsulationThickness)
}

func TestExtractStandard(t *testing.T) {
	t.Run("Should recognize IEC 60502-1 with and without spacing", func(t *testing.T) {
		for _, text := range []string{"per IEC 60502-1", "per iec60502-1 rules"} {
			fs := Extract(text)
			require.NotNil(t, fs.Standard, text)
			assert.Equal(t, schema.StandardIEC605021, *fs.Standard)
		}
	})

	t.Run("Should mark a partless IEC 60502 as ambiguous", func(t *testing.T) {
		fs := Extract("designed to IEC 60502")
		require.NotNil(t, fs.Standard)
		assert.Equal(t, "IEC 60502 (ambiguous - specify part)", *fs.Standard)
	})

	t.Run("Should leave the field absent without a standard token", func(t *testing.T) {
		fs := Extract("0.6/1 kV copper cable")
		assert.Nil(t, fs.Standard)
	})
}

func TestExtractVoltage(t *testing.T) {
	t.Run("Should prefer the second number of a dual rating", func(t *testing.T) {
		fs := Extract("rated 0.6/1 kV")
		require.NotNil(t, fs.VoltageKV)
		assert.Equal(t, 1.0, *fs.VoltageKV)
	})

	t.Run("Should read single ratings with or without a space", func(t *testing.T) {
		fs := Extract("an 11kV feeder")
		require.NotNil(t, fs.VoltageKV)
		assert.Equal(t, 11.0, *fs.VoltageKV)

		fs = Extract("a 0.6 kV circuit")
		require.NotNil(t, fs.VoltageKV)
		assert.Equal(t, 0.6, *fs.VoltageKV)
	})
}

func TestExtractConductor(t *testing.T) {
	t.Run("Should match material tokens on word boundaries", func(t *testing.T) {
		fs := Extract("aluminum conductor")
		require.NotNil(t, fs.ConductorMaterial)
		assert.Equal(t, schema.ConductorAluminium, *fs.ConductorMaterial)

		// "circuit" contains neither cu nor al as a word.
		fs = Extract("short circuit rating")
		assert.Nil(t, fs.ConductorMaterial)
	})

	t.Run("Should prefer copper when both materials appear", func(t *testing.T) {
		fs := Extract("Cu or Al conductor")
		require.NotNil(t, fs.ConductorMaterial)
		assert.Equal(t, schema.ConductorCopper, *fs.ConductorMaterial)
	})

	t.Run("Should read the conductor class", func(t *testing.T) {
		fs := Extract("Class 5 flexible conductor")
		require.NotNil(t, fs.ConductorClass)
		assert.Equal(t, "Class 5", *fs.ConductorClass)
	})
}

func TestExtractCSA(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"10 sqmm", 10},
		{"16 mm²", 16},
		{"2.5mm2", 2.5},
		{"four core 35 mm2 cable", 35},
	}
	for _, tc := range cases {
		fs := Extract(tc.text)
		require.NotNil(t, fs.CSAMM2, tc.text)
		assert.Equal(t, tc.want, *fs.CSAMM2, tc.text)
	}
}

func TestExtractThickness(t *testing.T) {
	t.Run("Should read the value after an insulation keyword", func(t *testing.T) {
		fs := Extract("PVC insulation, 1 mm")
		require.NotNil(t, fs.InsulationThickness)
		assert.Equal(t, 1.0, *fs.InsulationThickness)
	})

	t.Run("Should accept the ti shorthand", func(t *testing.T) {
		fs := Extract("XLPE, ti 1.1 mm")
		require.NotNil(t, fs.InsulationThickness)
		assert.Equal(t, 1.1, *fs.InsulationThickness)
	})

	t.Run("Should not confuse area units with thickness", func(t *testing.T) {
		fs := Extract("insulation over 10 mm2 conductor, wall 1.2 mm")
		require.NotNil(t, fs.InsulationThickness)
		assert.Equal(t, 1.2, *fs.InsulationThickness)
	})

	t.Run("Should fall back to a sole millimetre value", func(t *testing.T) {
		fs := Extract("0.6/1 kV cable, 1.4 mm wall")
		require.NotNil(t, fs.InsulationThickness)
		assert.Equal(t, 1.4, *fs.InsulationThickness)
	})

	t.Run("Should stay absent when the fallback is ambiguous", func(t *testing.T) {
		fs := Extract("1.2 mm inner sheath and 1.8 mm outer sheath")
		assert.Nil(t, fs.InsulationThickness)
	})

	t.Run("Should not cross lines after a keyword", func(t *testing.T) {
		fs := Extract("PVC insulation grade A\nouter sheath 1.8 mm\narmour 2.2 mm")
		assert.Nil(t, fs.InsulationThickness)
	})
}

func TestExtractDeterminism(t *testing.T) {
	text := "IEC 60502-1, 0.6/1 kV, Al Class 2, 50 mm2, XLPE, 1.0 mm insulation"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(text))
	}
}

func TestExtractEmpty(t *testing.T) {
	assert.Equal(t, schema.FieldSet{}, Extract("no cable data here"))
}
