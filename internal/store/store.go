// Package store holds the persistence collaborators: Postgres for the
// generic record store and the specialized per-domain tables, Redis or an
// in-memory map for the alert dismissal set.
package store

import "errors"

var ErrNotFound = errors.New("not found")
