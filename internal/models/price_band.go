package models

// PriceBand is the catalog price filter. Unrecognized values collapse to
// BandAll so a hand-edited query string never errors.
type PriceBand string

const (
	BandAll  PriceBand = "all"
	BandLow  PriceBand = "0-60"   // price <= 60
	BandMid  PriceBand = "60-100" // 60 < price <= 100
	BandHigh PriceBand = "100+"   // price > 100
)

func ParsePriceBand(s string) PriceBand {
	switch PriceBand(s) {
	case BandLow, BandMid, BandHigh:
		return PriceBand(s)
	}
	return BandAll
}

func (b PriceBand) Matches(price int) bool {
	switch b {
	case BandLow:
		return price <= 60
	case BandMid:
		return price > 60 && price <= 100
	case BandHigh:
		return price > 100
	}
	return true
}

func (b PriceBand) String() string { return string(b) }
