package courier

import (
	"fmt"
	"math"
	"strings"
)

// ZoneRate is one row of a line-haul courier's zone table.
type ZoneRate struct {
	Base  int64
	PerKg int64
	ETD   string
}

// ZoneTiered prices a third-party line-haul courier purely from zone
// lookup tables: base plus per-kg beyond the first kilogram, with a
// long-haul surcharge past 50 km.
type ZoneTiered struct {
	Name    string
	Service string
	Rates   map[int]ZoneRate
}

const (
	longHaulFreeKm       = 50
	longHaulPctPerKm     = 0.01
	cargoCapableNamePart = "KARGO"
)

func (p ZoneTiered) Evaluate(c Context) []Option {
	r, ok := p.Rates[c.Zone]
	if !ok {
		return nil
	}
	// Heavy shipments only go out via couriers named as cargo-capable.
	// None of the configured line-haul couriers are, so cargo shipments
	// get no line-haul options; the engine logs when that happens.
	if c.NeedsCargo && !strings.Contains(p.Name, cargoCapableNamePart) {
		return nil
	}
	cost := r.Base + r.PerKg*int64(c.WeightKg-1)
	if c.DistanceKm > longHaulFreeKm {
		cost = int64(math.Round(float64(cost) * (1 + (c.DistanceKm-longHaulFreeKm)*longHaulPctPerKm)))
	}
	return []Option{{
		Courier:       p.Name,
		Service:       p.Service,
		Cost:          cost,
		EstimatedDays: r.ETD,
		Description:   fmt.Sprintf("Pengiriman reguler via %s", p.Name),
		Type:          TypeEkspedisi,
	}}
}
