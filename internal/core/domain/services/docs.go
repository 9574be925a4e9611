// Package services provides domain services that orchestrate operations
// spanning several inventory entities.
//
// The package includes:
//   - LogisticsManager: placement, removal and reporting across warehouses,
//     lines, pallets and packages, plus the global offload-order policy
//
// The manager is the boundary of the domain model. Kind and quality errors
// raised by the entities are absorbed there and surface to callers as a false
// result, with the reason written to the structured log.
package services
