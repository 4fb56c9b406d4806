// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Package json parses JSON documents with a generated typed parser.
// The parser in grammar.go is generated from json.pest.
package json

//go:generate go run github.com/szabgab/pest-typed -o grammar.go -p json json.pest
