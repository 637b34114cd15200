// Package constraint implements the Validator: a composition of
// pass/fail/indeterminate predicates over a Partition, plus the standard
// predicate library (contiguity, population and compactness bounds,
// self-configuring bounds).
package constraint
