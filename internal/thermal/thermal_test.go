package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOxygenFactor(t *testing.T) {
	assert.InDelta(t, 1.0, OxygenFactor(0), 1e-9)
	assert.InDelta(t, 0.9, OxygenFactor(1000), 1e-9)
	// Negative altitude also thins the factor (absolute value).
	assert.InDelta(t, 0.95, OxygenFactor(-500), 1e-9)
	// Floored at 0.5 no matter how high.
	assert.InDelta(t, 0.5, OxygenFactor(10000), 1e-9)
}

func TestHexagonalSurfaceArea(t *testing.T) {
	// Width 22 cm, height 9 cm: apothem 0.11 m, side 0.22/sqrt(3) m.
	got := HexagonalSurfaceArea(22, 9)
	assert.InDelta(t, 0.15242, got, 1e-4)

	// Doubling the height only grows the side area.
	taller := HexagonalSurfaceArea(22, 18)
	assert.Greater(t, taller, got)
}

func TestCalculateEquilibrium(t *testing.T) {
	in := &Input{
		AmbientTempC:  20,
		ColonySizePct: 50,
		AltitudeM:     0,
		Boxes:         DefaultBoxes(),
	}
	res := Calculate(in)

	assert.InDelta(t, 25000, res.ColonySize, 1e-9)
	assert.InDelta(t, 0.1, res.MetabolicHeatKW, 1e-9)
	assert.InDelta(t, 1.0, res.OxygenFactor, 1e-9)
	assert.InDelta(t, 0.05, res.ThermalResist, 1e-9)

	// Equilibrium sits strictly between ambient and the ideal 35 C.
	assert.Greater(t, res.BaseTempC, 20.0)
	assert.Less(t, res.BaseTempC, 35.0)

	// At equilibrium the conductive loss matches metabolic output to
	// within solver tolerance.
	assert.InDelta(t, res.MetabolicHeatKW, res.HeatTransferKW, 0.005)

	require.Len(t, res.BoxTempsC, 4)
	assert.InDelta(t, res.BaseTempC-2, res.BoxTempsC[0], 1e-9)
	assert.InDelta(t, res.BaseTempC, res.BoxTempsC[1], 1e-9)
	assert.InDelta(t, res.BaseTempC-8, res.BoxTempsC[3], 1e-9)
}

func TestCalculateColderAmbientLowersEquilibrium(t *testing.T) {
	warm := Calculate(&Input{AmbientTempC: 30, ColonySizePct: 50, Boxes: DefaultBoxes()})
	cold := Calculate(&Input{AmbientTempC: 0, ColonySizePct: 50, Boxes: DefaultBoxes()})

	assert.Greater(t, warm.BaseTempC, cold.BaseTempC)
}

func TestCalculateLargerColonyRunsWarmer(t *testing.T) {
	small := Calculate(&Input{AmbientTempC: 15, ColonySizePct: 10, Boxes: DefaultBoxes()})
	large := Calculate(&Input{AmbientTempC: 15, ColonySizePct: 100, Boxes: DefaultBoxes()})

	assert.Greater(t, large.BaseTempC, small.BaseTempC)
}

func TestCalculateVolume(t *testing.T) {
	res := Calculate(&Input{AmbientTempC: 20, ColonySizePct: 50, Boxes: []Box{
		{WidthCm: 100, LengthCm: 100, HeightCm: 100},
	}})
	assert.InDelta(t, 1.0, res.TotalVolumeM3, 1e-9)
}
