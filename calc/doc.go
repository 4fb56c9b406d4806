// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package calc parses and evaluates arithmetic expressions.
// The parser in grammar.go is generated from calc.pest.
package calc

//go:generate go run github.com/szabgab/pest-typed -o grammar.go -p calc calc.pest
