// Package models defines the persisted entities of the leasing engine: clients,
// properties with their category variants, rentals and the payments ledger.
package models

//go:generate go run ../tools/gen_models_registry.go .
