package model

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used when comparing the floating-point
// fields of two orders.
const Epsilon = 0x1p-52 // math.Nextafter(1, 2) - 1

// Side is the direction of an order: the counterparty acquired crypto
// ("buy") or disposed of it ("sell").
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide decodes a wire token into a Side. Any token outside the closed
// enumeration is a hard parse failure.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return "", fmt.Errorf("order type %q not supported", s)
	}
}

// Order is one completed cash order reported by the upstream endpoint.
//
// An order carries no upstream identifier; its identity is its full value.
// All fields are comparable, so an Order can be used directly as a map key.
// That membership is bit-exact on the float fields, while Equal applies an
// epsilon tolerance. See OrderSet for how the two semantics are used.
type Order struct {
	Side         Side    // buy or sell
	Blockchain   string  // underlying ledger (e.g. "eth")
	CryptoAmount float64 // asset quantity
	CryptoSymbol string  // asset symbol (e.g. "ETH")
	FiatAmount   float64 // fiat quantity
	FiatPrice    float64 // fiat unit price of the asset at execution
	FiatSymbol   string  // fiat symbol (e.g. "EUR")
}

// Equal reports whether two orders describe the same event. String fields
// compare exactly; amount fields compare within Epsilon (absolute
// difference), so values differing only in the last representable bit are
// the same.
func (o Order) Equal(other Order) bool {
	return o.Side == other.Side &&
		o.Blockchain == other.Blockchain &&
		absDiffEq(o.CryptoAmount, other.CryptoAmount) &&
		o.CryptoSymbol == other.CryptoSymbol &&
		absDiffEq(o.FiatAmount, other.FiatAmount) &&
		absDiffEq(o.FiatPrice, other.FiatPrice) &&
		o.FiatSymbol == other.FiatSymbol
}

func absDiffEq(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// String renders the order the way it is logged.
func (o Order) String() string {
	return fmt.Sprintf("%s %v %s for %v %s at %v %s on %s",
		o.Side, o.CryptoAmount, o.CryptoSymbol,
		o.FiatAmount, o.FiatSymbol,
		o.FiatPrice, o.FiatSymbol,
		o.Blockchain)
}
