// Package model defines the order type shared across the collector.
//
// Conventions:
//   - Amounts: float64, parsed from upstream decimal strings
//   - Equality: epsilon tolerance on amounts, exact on everything else
//   - Set membership: bit-exact (Order used as a map key)
package model
