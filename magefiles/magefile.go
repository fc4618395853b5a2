//go:build mage

// Package main provides build targets for oneof using Mage.
//
// Usage:
//
//	mage generate   Regenerate pkg/oneof/union_gen.go
//	mage build      Compile oneofgen to bin/
//	mage test       Run all tests
//	mage check      Regenerate, then fail if union_gen.go changed
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "oneofgen"
	binaryDir  = "bin"
	cmdDir     = "./cmd/oneofgen"
	genFile    = "pkg/oneof/union_gen.go"
)

// Generate rewrites the union types from the generator.
func Generate() error {
	return sh.RunV("go", "run", cmdDir, "--out", genFile)
}

// Build compiles the oneofgen binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check fails when the committed union_gen.go differs from the generator output.
func Check() error {
	mg.Deps(Generate)
	out, err := sh.Output("git", "status", "--porcelain", genFile)
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("%s is stale, run mage generate", genFile)
	}
	return nil
}
