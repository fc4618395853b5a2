// Package oneof provides closed unions: values holding exactly one member of
// a variant list fixed at the declaration site, tagged with its position.
//
// A union over n members is OfN. Members are stored inline, so building and
// narrowing a union never boxes or allocates. A union is shrunk one member at
// a time with NarrowK, which yields either the member at position K or a union
// over the remaining members. A remainder of one member collapses to the bare
// member type, so a narrowing chain always ends in a plain value.
//
// Key operations:
// - WithK: inject a member value at position K
// - NarrowK: extract position K or the remainder (Either)
// - GetK: partial access without narrowing
// - Switch/MatchN: exhaustive dispatch over every member
// - ExtendN: widen a union by a new last member
// - Last: narrow a bare value, leaving the uninhabited Never
//
// Union types are generated; see union_gen.go and cmd/oneofgen.
package oneof

//go:generate go run ../../cmd/oneofgen --out union_gen.go
