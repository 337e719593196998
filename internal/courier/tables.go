package courier

// DefaultPolicies returns the reference rate tables in render order:
// the priority line-haul couriers (JNE, J&T) first, the remaining
// line-haul couriers, then the store courier and the GoSend tiers.
// Order only affects presentation before the engine sorts by cost.
func DefaultPolicies() []Policy {
	return []Policy{
		ZoneTiered{
			Name:    "JNE",
			Service: "REG",
			Rates: map[int]ZoneRate{
				1: {Base: 15000, PerKg: 5000, ETD: "1-2 hari"},
				2: {Base: 18000, PerKg: 6000, ETD: "2-3 hari"},
				3: {Base: 24000, PerKg: 9000, ETD: "3-5 hari"},
				4: {Base: 32000, PerKg: 13000, ETD: "4-6 hari"},
				5: {Base: 42000, PerKg: 17000, ETD: "5-7 hari"},
			},
		},
		ZoneTiered{
			Name:    "J&T Express",
			Service: "EZ",
			Rates: map[int]ZoneRate{
				1: {Base: 16000, PerKg: 5500, ETD: "1-2 hari"},
				2: {Base: 19000, PerKg: 6500, ETD: "2-3 hari"},
				3: {Base: 25000, PerKg: 9500, ETD: "3-5 hari"},
				4: {Base: 33000, PerKg: 13500, ETD: "4-6 hari"},
				5: {Base: 43000, PerKg: 17500, ETD: "6-8 hari"},
			},
		},
		ZoneTiered{
			Name:    "SiCepat",
			Service: "REG",
			Rates: map[int]ZoneRate{
				1: {Base: 15500, PerKg: 5200, ETD: "1-2 hari"},
				2: {Base: 18500, PerKg: 6200, ETD: "2-4 hari"},
				3: {Base: 24500, PerKg: 9200, ETD: "3-5 hari"},
				4: {Base: 32500, PerKg: 13200, ETD: "5-7 hari"},
			},
		},
		ZoneTiered{
			Name:    "AnterAja",
			Service: "REG",
			Rates: map[int]ZoneRate{
				1: {Base: 15200, PerKg: 5100, ETD: "1-2 hari"},
				2: {Base: 18200, PerKg: 6100, ETD: "2-3 hari"},
				3: {Base: 24200, PerKg: 9100, ETD: "4-6 hari"},
			},
		},
		ZoneTiered{
			Name:    "POS Indonesia",
			Service: "Paket Kilat",
			Rates: map[int]ZoneRate{
				1: {Base: 17000, PerKg: 6000, ETD: "2-3 hari"},
				2: {Base: 20000, PerKg: 7000, ETD: "3-4 hari"},
				3: {Base: 26000, PerKg: 10000, ETD: "4-6 hari"},
				4: {Base: 34000, PerKg: 14000, ETD: "5-8 hari"},
				5: {Base: 45000, PerKg: 18000, ETD: "7-10 hari"},
			},
		},
		StoreCourier{
			Name:                     "KURIR TOKO",
			BaseRate:                 3000,
			PerKmRate:                1500,
			CargoRate:                100000,
			CargoDistanceThresholdKm: 15,
			CargoDistanceSurcharge:   50000,
		},
		SameCityExpress{
			Courier:        "GOSEND",
			Service:        "INSTANT",
			BaseRate:       9000,
			PerKmRate:      2500,
			MaxWeightGrams: 20000,
			MaxDistanceKm:  40,
			ETDByZone:      map[int]string{1: "1-2 jam", 2: "2-3 jam"},
		},
		SameCityExpress{
			Courier:        "GOSEND",
			Service:        "SAME DAY",
			BaseRate:       7000,
			PerKmRate:      1800,
			MaxWeightGrams: 20000,
			MaxDistanceKm:  60,
			ETDByZone:      map[int]string{1: "6-8 jam", 2: "8 jam"},
		},
	}
}
