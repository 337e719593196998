package quote

import "errors"

// ErrInvalidWeight is returned when a shipment weight is missing or
// not positive.
var ErrInvalidWeight = errors.New("invalid weight")

// cargoThresholdGrams is the regular-tier ceiling: anything strictly
// heavier ships as cargo. Exactly 20 000 g is still regular.
const cargoThresholdGrams = 20000

// BillableKg converts grams to whole billable kilograms: partial
// kilograms round up, with a 1 kg floor for sub-kilogram shipments.
func BillableKg(grams int) (int, error) {
	if grams <= 0 {
		return 0, ErrInvalidWeight
	}
	kg := (grams + 999) / 1000
	if kg < 1 {
		kg = 1
	}
	return kg, nil
}

// NeedsCargo reports whether a shipment exceeds the regular-tier
// weight ceiling.
func NeedsCargo(grams int) bool {
	return grams > cargoThresholdGrams
}
