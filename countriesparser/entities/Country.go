// Package entities holds the data types produced by the countries parser.
package entities

// Country is one retained code/label pair from the indicator CSV.
// Code is the REF_AREA identifier, Name its display label.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
