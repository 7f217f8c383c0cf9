// Package watcher implements the order watch loop.
//
// The watcher:
//   - Seeds its baseline from the most recent persisted orders at startup
//   - Polls the upstream endpoint on a fixed interval
//   - Diffs each batch against the baseline to find new orders
//   - Appends new orders to the store and logs them
//   - Replaces the baseline wholesale after every successful cycle
//
// The wholesale replacement is a known limitation: if upstream rotates its
// reporting window faster than the poll interval, orders can age out
// without ever being observed. The all-new anomaly warning exists to make
// that visible.
package watcher
