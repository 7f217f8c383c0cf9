// Package store persists observed orders to the append-only orders table.
//
// Rows are stamped with a server-assigned created_at at insert time and are
// never updated or deleted. The table doubles as the restart baseline: the
// most recent rows seed the watcher's "already seen" set on startup.
package store
