// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package sample holds a small generated parser demonstrating
// ordered choice, repetition, and the rule kinds.
// The parser in grammar.go is generated from sample.pest.
package sample

//go:generate go run github.com/szabgab/pest-typed -o grammar.go -p sample sample.pest
