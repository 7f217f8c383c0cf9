package api

import (
	"testing"

	"github.com/mkarlin/orderwatch/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1.5", 1.5, false},
		{"0.00042", 0.00042, false},
		{"3000", 3000, false},
		{"-2.5", -2.5, false},
		{"1e3", 1000, false},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Inf", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAPIOrderToModel(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		raw := APIOrder{
			Type:         "buy",
			Blockchain:   "eth",
			CryptoAmount: "1.5",
			CryptoSymbol: "ETH",
			FiatAmount:   "3000",
			FiatPrice:    "2000",
			FiatSymbol:   "EUR",
		}

		got, err := raw.ToModel()
		if err != nil {
			t.Fatalf("ToModel failed: %v", err)
		}

		want := model.Order{
			Side:         model.SideBuy,
			Blockchain:   "eth",
			CryptoAmount: 1.5,
			CryptoSymbol: "ETH",
			FiatAmount:   3000,
			FiatPrice:    2000,
			FiatSymbol:   "EUR",
		}
		if got != want {
			t.Errorf("ToModel() = %+v, want %+v", got, want)
		}
	})

	t.Run("invalid fields", func(t *testing.T) {
		valid := APIOrder{
			Type:         "sell",
			Blockchain:   "btc",
			CryptoAmount: "0.1",
			CryptoSymbol: "BTC",
			FiatAmount:   "6000",
			FiatPrice:    "60000",
			FiatSymbol:   "USD",
		}

		for name, mutate := range map[string]func(*APIOrder){
			"unknown type":   func(o *APIOrder) { o.Type = "short" },
			"NaN amount":     func(o *APIOrder) { o.CryptoAmount = "NaN" },
			"non-numeric":    func(o *APIOrder) { o.FiatAmount = "lots" },
			"infinite price": func(o *APIOrder) { o.FiatPrice = "Inf" },
			"empty amount":   func(o *APIOrder) { o.CryptoAmount = "" },
		} {
			t.Run(name, func(t *testing.T) {
				raw := valid
				mutate(&raw)
				if _, err := raw.ToModel(); err == nil {
					t.Error("ToModel should fail")
				}
			})
		}
	})
}
