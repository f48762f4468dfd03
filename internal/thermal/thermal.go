package thermal

import "math"

// Physical constants of the Econectar hive design. Metabolic heat is
// Watts per bee; conductivity is W/(m*K) for the papier-mache and
// terracotta composite middle layer.
const (
	MaxColonySize           = 50000
	BeeMetabolicHeat        = 0.0040
	MiddleLayerThicknessCm  = 1.0
	MiddleLayerConductivity = 0.2
	IdealHiveTemperatureC   = 35.0
	solverToleranceK        = 0.01
)

// Box is one stacked hive box. Dimensions are centimeters; the cooling
// effect is the temperature drop this box sits below the hive base.
type Box struct {
	WidthCm       float64 `json:"WidthCm" yaml:"widthCm" validate:"gt=0"`
	LengthCm      float64 `json:"LengthCm" yaml:"lengthCm" validate:"gt=0"`
	HeightCm      float64 `json:"HeightCm" yaml:"heightCm" validate:"gt=0"`
	CoolingEffect float64 `json:"CoolingEffect" yaml:"coolingEffect" validate:"gte=0,lte=20"`
}

// Input is one calculation request.
type Input struct {
	AmbientTempC  float64 `json:"AmbientTempC" validate:"gte=-10,lte=45"`
	ColonySizePct float64 `json:"ColonySizePct" validate:"gte=0,lte=100"`
	AltitudeM     float64 `json:"AltitudeM" validate:"gte=-500,lte=5000"`
	Boxes         []Box   `json:"Boxes" validate:"required,min=1,dive"`
}

// Result mirrors the dashboard metrics. Heat figures are kilowatts.
type Result struct {
	ColonySize      float64   `json:"ColonySize"`
	MetabolicHeatKW float64   `json:"MetabolicHeatKW"`
	BaseTempC       float64   `json:"BaseTempC"`
	BoxTempsC       []float64 `json:"BoxTempsC"`
	TotalVolumeM3   float64   `json:"TotalVolumeM3"`
	TotalSurfaceM2  float64   `json:"TotalSurfaceM2"`
	ThermalResist   float64   `json:"ThermalResist"`
	AmbientTempC    float64   `json:"AmbientTempC"`
	OxygenFactor    float64   `json:"OxygenFactor"`
	HeatTransferKW  float64   `json:"HeatTransferKW"`
}

// OxygenFactor models reduced oxygen availability with altitude: 10%
// loss per 1000 m, floored at 0.5.
func OxygenFactor(altitudeM float64) float64 {
	factor := 1 - 0.1*math.Abs(altitudeM)/1000
	return math.Max(0.5, factor)
}

// HexagonalSurfaceArea is the outer area of one hexagonal box in m²:
// two hexagonal faces plus six rectangular sides. Width is the flat-to-
// flat distance across the hexagon.
func HexagonalSurfaceArea(widthCm, heightCm float64) float64 {
	widthM := widthCm / 100
	heightM := heightCm / 100

	apothem := widthM / 2
	sideLength := (2 * apothem) / math.Sqrt(3)

	baseArea := 6 * (0.5 * sideLength * apothem)
	sideArea := 6 * (sideLength * heightM)

	return 2*baseArea + sideArea
}

// Calculate finds the equilibrium hive temperature: the point where
// conductive loss through the middle layer balances colony metabolic
// heat, searched by bisection between ambient and the ideal hive
// temperature in Kelvin.
func Calculate(in *Input) *Result {
	ambientK := in.AmbientTempC + 273.15
	idealK := IdealHiveTemperatureC + 273.15

	colonySize := MaxColonySize * (in.ColonySizePct / 100)
	oxygenFactor := OxygenFactor(in.AltitudeM)
	metabolicHeat := colonySize * BeeMetabolicHeat * oxygenFactor

	thermalResistance := (MiddleLayerThicknessCm / 100) / MiddleLayerConductivity

	var totalVolume, totalSurface float64
	for _, box := range in.Boxes {
		totalVolume += (box.WidthCm / 100) * (box.LengthCm / 100) * (box.HeightCm / 100)
		totalSurface += HexagonalSurfaceArea(box.WidthCm, box.HeightCm)
	}

	heatTransfer := func(tempDiffK float64) float64 {
		return totalSurface * tempDiffK / thermalResistance
	}

	lower, upper := ambientK, idealK
	for upper-lower > solverToleranceK {
		estimate := (lower + upper) / 2
		if heatTransfer(math.Abs(estimate-ambientK)) > metabolicHeat {
			upper = estimate
		} else {
			lower = estimate
		}
	}

	baseTempC := (lower+upper)/2 - 273.15

	boxTemps := make([]float64, 0, len(in.Boxes))
	for _, box := range in.Boxes {
		boxTemps = append(boxTemps, baseTempC-box.CoolingEffect)
	}

	finalTransfer := heatTransfer(math.Abs(baseTempC + 273.15 - ambientK))

	return &Result{
		ColonySize:      colonySize,
		MetabolicHeatKW: metabolicHeat / 1000,
		BaseTempC:       baseTempC,
		BoxTempsC:       boxTemps,
		TotalVolumeM3:   totalVolume,
		TotalSurfaceM2:  totalSurface,
		ThermalResist:   thermalResistance,
		AmbientTempC:    in.AmbientTempC,
		OxygenFactor:    oxygenFactor,
		HeatTransferKW:  finalTransfer / 1000,
	}
}

// DefaultBoxes is the stock four-box Econectar hive.
func DefaultBoxes() []Box {
	boxes := make([]Box, 0, 4)
	for _, cooling := range []float64{2, 0, 0, 8} {
		boxes = append(boxes, Box{WidthCm: 22, LengthCm: 26, HeightCm: 9, CoolingEffect: cooling})
	}
	return boxes
}
