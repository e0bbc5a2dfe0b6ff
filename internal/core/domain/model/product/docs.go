// Package product provides the Product entity of the ordering model.
//
// A Product is identified by its product number. Its price may change over
// the product's lifetime; every change is validated against the same rule
// that applies at construction.
//
// Key business rules:
//   - Product numbers lie in [NumberMin, NumberMax]
//   - Prices are integers of at least PriceMin
//   - Two products with the same number are the same product
package product
