// Package database provides connection pool management for PostgreSQL.
//
// The collector keeps a single append-only orders table; one pool serves
// both the bootstrap read and the per-order inserts.
package database
