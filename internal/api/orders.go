package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarlin/orderwatch/internal/model"
)

// latestOrdersPath is the single endpoint this collector consumes.
const latestOrdersPath = "/api/cash/latest_completed_orders"

// LatestOrders fetches the most recent completed orders and returns them as
// a set. The upstream occasionally repeats an order within one response;
// building a set collapses those duplicates on purpose.
//
// Envelope resolution order: success shape (latestOrders list), then
// failure shape (message), then a decode error carrying the raw body for
// diagnostics.
func (c *Client) LatestOrders(ctx context.Context) (model.OrderSet, error) {
	body, err := c.doGet(ctx, latestOrdersPath)
	if err != nil {
		return nil, err
	}

	var env ordersEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode response %q: %w", body, err)
	}

	switch {
	case env.LatestOrders != nil:
		var raw []APIOrder
		if err := json.Unmarshal(*env.LatestOrders, &raw); err != nil {
			return nil, fmt.Errorf("decode latestOrders %q: %w", body, err)
		}

		orders := make(model.OrderSet, len(raw))
		for i := range raw {
			o, err := raw[i].ToModel()
			if err != nil {
				return nil, fmt.Errorf("order %d: %w", i, err)
			}
			orders.Add(o)
		}
		return orders, nil

	case env.Message != nil:
		return nil, &UpstreamError{Message: *env.Message}

	default:
		return nil, fmt.Errorf("response %q matches neither envelope shape", body)
	}
}
