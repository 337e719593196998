package courier

import "math"

// SameCityExpress is a fast short-range tier (GoSend-class) with hard
// weight and distance caps instead of a cargo fallback.
type SameCityExpress struct {
	Courier        string
	Service        string
	BaseRate       int64
	PerKmRate      int64
	MaxWeightGrams int
	MaxDistanceKm  float64
	ETDByZone      map[int]string
}

func (p SameCityExpress) Evaluate(c Context) []Option {
	if c.Zone > 2 {
		return nil
	}
	if c.TotalWeightGrams > p.MaxWeightGrams {
		return nil
	}
	if c.DistanceKm > p.MaxDistanceKm {
		return nil
	}
	cost := int64(math.Round(float64(p.BaseRate) + float64(p.PerKmRate)*c.DistanceKm*float64(c.WeightKg)))
	return []Option{{
		Courier:       p.Courier,
		Service:       p.Service,
		Cost:          cost,
		EstimatedDays: p.ETDByZone[c.Zone],
		Description:   "Pengiriman cepat dalam kota",
		Type:          TypeGoSend,
	}}
}
