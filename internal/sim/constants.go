package sim

// Constants drive the demand model and cost structure. One set is shared by
// every session in the process.
type Constants struct {
	CostPerUnit              float64
	FixedOpex                float64
	TaxRate                  float64
	BaseDemand               float64
	MarketingEffectPerDollar float64
	PriceElasticity          float64
	ReferencePrice           float64
}

var Defaults = Constants{
	CostPerUnit:              25,
	FixedOpex:                10_000,
	TaxRate:                  0.20,
	BaseDemand:               1_200,
	MarketingEffectPerDollar: 0.1,
	PriceElasticity:          20,
	ReferencePrice:           50,
}
