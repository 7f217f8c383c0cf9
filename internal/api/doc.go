// Package api provides the client for the upstream cash-orders endpoint.
//
// Single endpoint:
//   - GET /api/cash/latest_completed_orders
//
// The response is an untagged envelope: either a success payload with a
// latestOrders list, or a failure payload with a human-readable message.
// There is no discriminant field; the decoder tries the success shape
// first and falls back by content.
package api
