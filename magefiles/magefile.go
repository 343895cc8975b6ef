//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build builds the aistriu binary
func Build() error {
	fmt.Println("Building aistriu...")
	return sh.RunV("go", "build", "-o", "aistriu", "./cmd/aistriu")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the aistriu binary
func Install() error {
	return sh.RunV("go", "install", "./cmd/aistriu")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("aistriu")
}
