package api

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mkarlin/orderwatch/internal/model"
)

// ParseAmount parses a wire amount string into a finite float64.
// Non-numeric and non-finite values (NaN, Inf) are rejected.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	return f, nil
}

// ToModel converts a wire order to a model.Order. Any field that fails to
// parse fails the conversion; callers treat that as a failure of the whole
// batch, never a partial ingest.
func (o *APIOrder) ToModel() (model.Order, error) {
	side, err := model.ParseSide(o.Type)
	if err != nil {
		return model.Order{}, err
	}

	cryptoAmount, err := ParseAmount(o.CryptoAmount)
	if err != nil {
		return model.Order{}, fmt.Errorf("cryptoAmount: %w", err)
	}
	fiatAmount, err := ParseAmount(o.FiatAmount)
	if err != nil {
		return model.Order{}, fmt.Errorf("fiatAmount: %w", err)
	}
	fiatPrice, err := ParseAmount(o.FiatPrice)
	if err != nil {
		return model.Order{}, fmt.Errorf("fiatPrice: %w", err)
	}

	return model.Order{
		Side:         side,
		Blockchain:   o.Blockchain,
		CryptoAmount: cryptoAmount,
		CryptoSymbol: o.CryptoSymbol,
		FiatAmount:   fiatAmount,
		FiatPrice:    fiatPrice,
		FiatSymbol:   o.FiatSymbol,
	}, nil
}
