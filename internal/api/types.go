package api

import "encoding/json"

// ordersEnvelope is the raw response wrapper. The upstream returns either
// the success shape or the failure shape with no discriminant tag, so both
// variants are captured lazily and resolved by content.
type ordersEnvelope struct {
	LatestOrders *json.RawMessage `json:"latestOrders"`
	Message      *string          `json:"message"`
}

// APIOrder represents one order as reported on the wire. All numeric
// fields arrive as strings.
type APIOrder struct {
	Type         string `json:"type"`
	Blockchain   string `json:"blockchain"`
	CryptoAmount string `json:"cryptoAmount"`
	CryptoSymbol string `json:"cryptoSymbol"`
	FiatAmount   string `json:"fiatAmount"`
	FiatPrice    string `json:"fiatPrice"`
	FiatSymbol   string `json:"fiatSymbol"`
}
