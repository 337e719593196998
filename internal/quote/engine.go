package quote

import (
	"sort"

	"go.uber.org/zap"

	"ongkir/internal/courier"
	"ongkir/internal/destination"
)

// Result is one full quote: every eligible priced option, sorted
// ascending by cost, plus the shipment facts it was priced against.
// An empty ShippingOptions list is a valid outcome (no courier serves
// the combination), not an error.
type Result struct {
	TotalWeight     int              `json:"totalWeight"`
	WeightInKg      int              `json:"weightInKg"`
	Destination     string           `json:"destination"`
	Zone            int              `json:"zone"`
	DistanceKm      float64          `json:"distanceKm"`
	NeedsCargo      bool             `json:"needsCargo"`
	ShippingOptions []courier.Option `json:"shippingOptions"`
	CheapestCourier string           `json:"cheapestCourier"`
}

// Engine evaluates every configured courier policy against a resolved
// destination and weight. Tables are injected at construction and never
// mutated, so a single Engine is safe for concurrent use.
type Engine struct {
	registry *destination.Registry
	policies []courier.Policy
	log      *zap.Logger
}

func NewEngine(registry *destination.Registry, policies []courier.Policy, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{registry: registry, policies: policies, log: log}
}

// Quote prices a shipment. It fails with ErrInvalidWeight when grams
// is not positive and destination.ErrUnknown when the destination is
// not in the registry.
func (e *Engine) Quote(totalWeightGrams int, rawDestination string) (Result, error) {
	kg, err := BillableKg(totalWeightGrams)
	if err != nil {
		return Result{}, err
	}
	dest, err := e.registry.Resolve(rawDestination)
	if err != nil {
		return Result{}, err
	}

	c := courier.Context{
		Zone:             dest.Zone,
		DistanceKm:       dest.DistanceKm,
		WeightKg:         kg,
		TotalWeightGrams: totalWeightGrams,
		NeedsCargo:       NeedsCargo(totalWeightGrams),
	}

	options := make([]courier.Option, 0, len(e.policies))
	lineHaul := 0
	for _, p := range e.policies {
		opts := p.Evaluate(c)
		for _, o := range opts {
			if o.Type == courier.TypeEkspedisi {
				lineHaul++
			}
		}
		options = append(options, opts...)
	}

	// No line-haul courier is named as cargo-capable, so heavy
	// shipments always drop the whole line-haul set. Surface that in
	// the logs until product confirms whether it is intended.
	if c.NeedsCargo && lineHaul == 0 {
		e.log.Warn("heavy shipment excluded all line-haul couriers",
			zap.String("destination", dest.Slug),
			zap.Int("totalWeight", totalWeightGrams),
		)
	}

	// Stable: ties keep the render order built above.
	sort.SliceStable(options, func(i, j int) bool { return options[i].Cost < options[j].Cost })

	res := Result{
		TotalWeight:     totalWeightGrams,
		WeightInKg:      kg,
		Destination:     dest.Name,
		Zone:            dest.Zone,
		DistanceKm:      dest.DistanceKm,
		NeedsCargo:      c.NeedsCargo,
		ShippingOptions: options,
	}
	if len(options) > 0 {
		res.CheapestCourier = options[0].Courier
	}
	return res, nil
}
