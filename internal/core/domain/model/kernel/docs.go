// Package kernel provides the value objects shared by the whole inventory model.
//
// The package includes:
//   - UUID: the serial number of warehouses, lines, pallets and packages
//   - QualityMark: the grade tag that governs which goods may be stored together
//   - Mass: a positive decimal weight in kilograms
//
// All values are immutable. Zero values are rejected by their Validate methods,
// so an entity constructor can check every argument with a single errors.Join.
package kernel
