package courier

// Option types as rendered by the checkout UI. The UI gates
// cash-on-delivery on TypeKurirToko, so these strings are part of the
// wire contract.
const (
	TypeEkspedisi = "ekspedisi"
	TypeKurirToko = "kurir-toko"
	TypeKargo     = "kargo"
	TypeGoSend    = "gosend"
)

// Option is one priced shipping choice. Cost is in whole rupiah.
type Option struct {
	Courier       string `json:"courier"`
	Service       string `json:"service"`
	Cost          int64  `json:"cost"`
	EstimatedDays string `json:"estimatedDays"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Recommended   bool   `json:"recommended,omitempty"`
}

// Context carries the resolved shipment facts every policy prices
// against.
type Context struct {
	Zone             int
	DistanceKm       float64
	WeightKg         int
	TotalWeightGrams int
	NeedsCargo       bool
}

// Policy prices a shipment for one courier. An empty slice means the
// courier does not serve this shipment.
type Policy interface {
	Evaluate(c Context) []Option
}
