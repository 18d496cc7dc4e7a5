package market

// Commodity holds the aggregated market picture for a single tradeable good.
// Numeric fields are nil when the underlying aggregate is undefined (no
// matching listings, or all prices NULL); nil is never collapsed to zero.
type Commodity struct {
	Name         string   `json:"name"`
	AvgBuyPrice  *float64 `json:"buy_price,omitempty"`
	AvgSellPrice *float64 `json:"sell_price,omitempty"`
	AvgMeanPrice *float64 `json:"avg_price,omitempty"`
	BestBuy      *Offer   `json:"best_buy,omitempty"`
	BestSell     *Offer   `json:"best_sell,omitempty"`
}

// Offer pins an extremal price to the station holding it and that station's
// system.
type Offer struct {
	Price   float64 `json:"price"`
	Station string  `json:"station"`
	System  string  `json:"system"`
}

// HasPriceData reports whether at least one headline average is defined.
// A commodity without any price data is returned to callers but never cached.
func (c *Commodity) HasPriceData() bool {
	return c.AvgBuyPrice != nil || c.AvgSellPrice != nil || c.AvgMeanPrice != nil
}
