package types

import "encoding/json"

// Package is one entry from an account's eligible billing package catalog.
// The catalog is fetched fresh for every change-package invocation and
// never cached across invocations.
type Package struct {
	ID            int64       `json:"id"`
	BandwidthName string      `json:"bandwidth_name"`
	Price         json.Number `json:"price"`
}

// Label renders the package the way the portal presents it to customers.
func (p Package) Label() string {
	return p.BandwidthName + " @ KES " + p.Price.String()
}
