// Package inventory contains the warehouse storage model: packages, pallets,
// storage lines and warehouses, plus the Registry that owns all of them.
//
// Containers own their contents. The contained side only keeps a non-owning
// back-link (the serial number of its line or pallet), which is resolved
// through the Registry. A link is set only by the container add operations
// (Line.AddCarton, Line.AddPallet, Pallet.AddPackage) and cleared only by the
// matching remove operations, so a collection and the links pointing at it
// cannot diverge.
//
// Admission rules are checked in a fixed order:
//   - Pallet: package kind, then quality mark, then capacity (count)
//   - Line: line mode and item kind, then capacity, then quality slots
//
// Kind and quality violations are errors (ErrTypeMismatch, ErrQualityMismatch).
// A full container or an exhausted set of quality slots is a plain rejection,
// reported as an Admission value by the Check methods and as false by the Add
// methods.
package inventory
