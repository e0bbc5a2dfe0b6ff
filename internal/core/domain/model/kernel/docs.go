// Package kernel provides the domain primitives shared by the ordering model.
//
// The package includes:
//   - UUID: a value object used as the identity of aggregates
//   - IntRange: a declarative integer constraint checked when an entity or
//     value object field is set during construction
//
// Entities and value objects declare their field rules as package-level
// IntRange values and run them from their private setters, so every rule is
// visible in one table next to the type it guards.
package kernel
