package courier

import "math"

// StoreCourier is the operator's own delivery service, priced by real
// distance and weight. Shipments over the cargo threshold switch to a
// flat cargo fee with an optional distance surcharge.
type StoreCourier struct {
	Name                     string
	BaseRate                 int64
	PerKmRate                int64
	CargoRate                int64
	CargoDistanceThresholdKm float64
	CargoDistanceSurcharge   int64
}

func (p StoreCourier) Evaluate(c Context) []Option {
	if c.Zone > 2 {
		return nil
	}
	etd := "Same Day"
	if c.Zone == 2 {
		etd = "1 hari"
	}
	if c.NeedsCargo {
		cost := p.CargoRate
		if c.DistanceKm > p.CargoDistanceThresholdKm {
			cost += p.CargoDistanceSurcharge
		}
		return []Option{{
			Courier:       p.Name,
			Service:       "KARGO",
			Cost:          cost,
			EstimatedDays: etd,
			Description:   "Pengiriman kargo untuk barang berat",
			Type:          TypeKargo,
			// Cargo is always the steered choice for heavy shipments,
			// regardless of price ordering.
			Recommended: true,
		}}
	}
	mult := c.WeightKg
	if mult < 1 {
		mult = 1
	}
	cost := int64(math.Round(float64(p.BaseRate) + float64(p.PerKmRate)*c.DistanceKm*float64(mult)))
	return []Option{{
		Courier:       p.Name,
		Service:       "ANTAR",
		Cost:          cost,
		EstimatedDays: etd,
		Description:   "Diantar langsung oleh kurir toko",
		Type:          TypeKurirToko,
	}}
}
