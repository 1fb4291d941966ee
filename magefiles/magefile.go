//go:build mage

// Package main provides build targets for the Omoro site using Mage.
//
// Usage:
//
//	mage build   Compile omoro and omoroctl to bin/
//	mage test    Run all tests
//	mage vet     Run go vet
//	mage run     Start the site with the local config
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryDir = "bin"

var binaries = map[string]string{
	"omoro":    "./cmd/omoro",
	"omoroctl": "./cmd/omoroctl",
}

// Build compiles both binaries to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	for name, dir := range binaries {
		if err := sh.RunV("go", "build", "-o", filepath.Join(binaryDir, name), dir); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Run builds and starts the site.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, "omoro"))
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
