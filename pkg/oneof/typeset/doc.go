// Package typeset holds the position algebra of a variant list: the ordered,
// duplicate-free list of member types a closed union is declared over.
//
// The list itself only exists in type parameters; this package works on the
// positions and on names standing for the members. It is used both by the
// generated union code at runtime and by the generator that writes it.
//
// Key operations:
// - Shift: remap a discriminant after one position has been removed
// - Remove: derive the remainder list, order preserved
// - FormOf: classify a list length into its surface form
// - Validate/Position: reject duplicate, empty, absent or ambiguous members
package typeset
