// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build mage

// Package main provides build targets for the YARA records project using Mage.
//
// Usage:
//
//	mage build    Compile yara and yaraseed to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage seed     Seed a local SQLite database (yara.db)
//	mage serve    Build and run the server against yara.db
//	mage clean    Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo     = "go"
	binLint   = "golangci-lint"
	binaryDir = "bin"
	localDB   = "yara.db"
)

var binaries = map[string]string{
	"yara":     ".",
	"yaraseed": "./cmd/yaraseed",
}

// Build compiles both binaries to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	for name, pkg := range binaries {
		if err := sh.RunV(binGo, "build", "-o", filepath.Join(binaryDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Seed creates the tables in yara.db and fills them with sample records.
func Seed() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, "yaraseed"), "--database-url", localDB, "--init-schema")
}

// Serve runs the server against yara.db.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, "yara"), "-t", "sqlite", "-d", localDB, "-init-schema")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
