package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ongkir/internal/courier"
	"ongkir/internal/destination"
)

func testEngine() *Engine {
	reg := destination.NewRegistry(destination.Defaults())
	return NewEngine(reg, courier.DefaultPolicies(), nil)
}

func assertSortedByCost(t *testing.T, opts []courier.Option) {
	t.Helper()
	for i := 1; i < len(opts); i++ {
		assert.LessOrEqual(t, opts[i-1].Cost, opts[i].Cost)
	}
}

func findByType(opts []courier.Option, typ string) []courier.Option {
	var out []courier.Option
	for _, o := range opts {
		if o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

func TestQuoteShortDistanceZone1(t *testing.T) {
	e := testEngine()

	res, err := e.Quote(2000, "Jakarta Pusat")
	require.NoError(t, err)

	assert.Equal(t, 2000, res.TotalWeight)
	assert.Equal(t, 2, res.WeightInKg)
	assert.Equal(t, "Jakarta Pusat", res.Destination)
	assert.Equal(t, 1, res.Zone)
	assert.Equal(t, float64(5), res.DistanceKm)
	assert.False(t, res.NeedsCargo)
	assertSortedByCost(t, res.ShippingOptions)

	toko := findByType(res.ShippingOptions, courier.TypeKurirToko)
	require.Len(t, toko, 1)
	assert.Equal(t, "KURIR TOKO", toko[0].Courier)
	assert.Equal(t, int64(18000), toko[0].Cost)

	gosend := findByType(res.ShippingOptions, courier.TypeGoSend)
	assert.NotEmpty(t, gosend, "distance 5 is within every GoSend cap")

	// At short range the store courier undercuts every line-haul
	// courier in the reference tables.
	cheapestLocal := toko[0].Cost
	for _, g := range gosend {
		if g.Cost < cheapestLocal {
			cheapestLocal = g.Cost
		}
	}
	for _, o := range findByType(res.ShippingOptions, courier.TypeEkspedisi) {
		assert.GreaterOrEqual(t, o.Cost, cheapestLocal, "line-haul %s undercuts local couriers", o.Courier)
	}

	assert.Equal(t, "KURIR TOKO", res.CheapestCourier)
	assert.Equal(t, res.ShippingOptions[0].Courier, res.CheapestCourier)
}

func TestQuoteFarZone5(t *testing.T) {
	e := testEngine()

	res, err := e.Quote(1000, "balikpapan")
	require.NoError(t, err)

	assert.Equal(t, 5, res.Zone)
	assert.False(t, res.NeedsCargo)
	assert.NotEmpty(t, res.ShippingOptions)
	assertSortedByCost(t, res.ShippingOptions)

	// Zone 1-2 only policies must be absent; only line-haul couriers
	// with a zone-5 table row appear.
	for _, o := range res.ShippingOptions {
		assert.Equal(t, courier.TypeEkspedisi, o.Type)
		assert.NotEqual(t, "KURIR TOKO", o.Courier)
		assert.NotEqual(t, "GOSEND", o.Courier)
	}
	// SiCepat (zones 1-4) and AnterAja (zones 1-3) do not serve zone 5.
	for _, o := range res.ShippingOptions {
		assert.NotEqual(t, "SiCepat", o.Courier)
		assert.NotEqual(t, "AnterAja", o.Courier)
	}
	// JNE zone 5, 1 kg: 42000 * (1 + (1230-50)*0.01) = 537600
	require.Equal(t, "JNE", res.ShippingOptions[0].Courier)
	assert.Equal(t, int64(537600), res.ShippingOptions[0].Cost)
}

func TestQuoteHeavyShipmentCargo(t *testing.T) {
	e := testEngine()

	res, err := e.Quote(25000, "jakarta-pusat")
	require.NoError(t, err)

	assert.True(t, res.NeedsCargo)
	require.Len(t, res.ShippingOptions, 1)
	opt := res.ShippingOptions[0]
	assert.Equal(t, "KURIR TOKO", opt.Courier)
	assert.Equal(t, courier.TypeKargo, opt.Type)
	assert.Equal(t, "KARGO", opt.Service)
	assert.Equal(t, int64(100000), opt.Cost)
	assert.True(t, opt.Recommended)
	assert.Equal(t, "KURIR TOKO", res.CheapestCourier)
}

func TestQuoteHeavyShipmentFarZoneNoOptions(t *testing.T) {
	e := testEngine()

	// Heavy shipment to zone 3: line-haul excluded by the cargo gate,
	// store courier and GoSend out of zone. A valid empty result, not
	// an error.
	res, err := e.Quote(25000, "bandung")
	require.NoError(t, err)
	assert.True(t, res.NeedsCargo)
	assert.Empty(t, res.ShippingOptions)
	assert.Equal(t, "", res.CheapestCourier)
}

func TestQuoteExactly20kgStaysRegular(t *testing.T) {
	e := testEngine()

	res, err := e.Quote(20000, "jakarta-pusat")
	require.NoError(t, err)
	assert.False(t, res.NeedsCargo)
	assert.Equal(t, 20, res.WeightInKg)
	// Regular tier: line-haul, store courier, and GoSend all present.
	assert.NotEmpty(t, findByType(res.ShippingOptions, courier.TypeEkspedisi))
	assert.NotEmpty(t, findByType(res.ShippingOptions, courier.TypeKurirToko))
	assert.NotEmpty(t, findByType(res.ShippingOptions, courier.TypeGoSend))
}

func TestQuoteInvalidWeight(t *testing.T) {
	e := testEngine()
	_, err := e.Quote(0, "jakarta-pusat")
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = e.Quote(-10, "jakarta-pusat")
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestQuoteUnknownDestination(t *testing.T) {
	e := testEngine()
	_, err := e.Quote(1000, "atlantis")
	assert.ErrorIs(t, err, destination.ErrUnknown)
}

func TestQuoteFreeFormDestination(t *testing.T) {
	e := testEngine()
	a, err := e.Quote(1500, "Tangerang Selatan")
	require.NoError(t, err)
	b, err := e.Quote(1500, "tangerang-selatan")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
