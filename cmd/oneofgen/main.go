// Command oneofgen writes the closed union types of package oneof.
//
// Usage:
//
//	oneofgen [--package oneof] [--max-arity 5] [-o union_gen.go]
//	oneofgen resolve <target> <member> <member>...
package main

import "github.com/ib-77/oneof/internal/cli"

func main() {
	cli.Execute()
}
