package utils

// Unit values accepted on profile mutations.
const (
	UnitImperial = "imp"
	UnitMetric   = "met"
)

// Conversion factors used to normalize metric input into the stored imperial
// representation. Defined once; every mutation path converts through here.
const (
	poundsPerKilogram  = 2.205
	centimetersPerInch = 2.54
)

func PoundsFromKilograms(kg float64) float64 {
	return kg * poundsPerKilogram
}

func InchesFromCentimeters(cm float64) float64 {
	return cm / centimetersPerInch
}

// ToImperialWeight converts a submitted weight into pounds. Imperial input
// passes through unchanged.
func ToImperialWeight(value float64, unit string) float64 {
	if unit == UnitMetric {
		return PoundsFromKilograms(value)
	}
	return value
}

// ToImperialHeight converts a submitted height into inches. Imperial input
// passes through unchanged.
func ToImperialHeight(value float64, unit string) float64 {
	if unit == UnitMetric {
		return InchesFromCentimeters(value)
	}
	return value
}
