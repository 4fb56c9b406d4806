// Copyright © 2026 The pest-typed Authors under an MIT-style license.

package json

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Decode parses input and converts the tree to Go values:
// objects become map[string]interface{}, arrays []interface{},
// numbers float64, strings string, booleans bool, and null nil.
func Decode(input string) (interface{}, error) {
	v, err := ParseValue(input)
	if err != nil {
		return nil, err
	}
	return decodeValue(v)
}

func decodeValue(v *Value) (interface{}, error) {
	switch n := v.E0.(type) {
	case *Object:
		return decodeObject(n)
	case *Array:
		return decodeArray(n)
	case *String:
		return unquote(n.Text())
	case *Number:
		return strconv.ParseFloat(n.Text(), 64)
	case *Boolean:
		return n.Text() == "true", nil
	case *Null:
		return nil, nil
	default:
		panic(fmt.Sprintf("impossible value variant %T", n))
	}
}

func decodeObject(o *Object) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	ms := o.Members()
	if ms == nil {
		return m, nil
	}
	for _, mem := range append([]*Member{ms.Member1()}, ms.Member2()...) {
		k, err := unquote(mem.String().Text())
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(mem.Value())
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func decodeArray(a *Array) ([]interface{}, error) {
	var vs []interface{}
	es := a.Elements()
	if es == nil {
		return vs, nil
	}
	for _, e := range append([]*Value{es.Value1()}, es.Value2()...) {
		v, err := decodeValue(e)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// unquote interprets the escapes of a quoted JSON string.
// The grammar only guarantees that a backslash is followed by
// some character, so bad escapes are reported here.
func unquote(text string) (string, error) {
	text = text[1 : len(text)-1]
	if !strings.ContainsRune(text, '\\') {
		return text, nil
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		c := text[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch c = text[i]; c {
		case '"', '\\', '/':
			b.WriteByte(c)
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'u':
			r, n, err := hex4(text[i+1:])
			if err != nil {
				return "", err
			}
			i += 1 + n
			if utf16.IsSurrogate(r) && strings.HasPrefix(text[i:], `\u`) {
				r2, n2, err := hex4(text[i+2:])
				if err != nil {
					return "", err
				}
				if d := utf16.DecodeRune(r, r2); d != utf8.RuneError {
					r = d
					i += 2 + n2
				}
			}
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("bad escape \\%c", c)
		}
	}
	return b.String(), nil
}

func hex4(s string) (rune, int, error) {
	if len(s) < 4 {
		return 0, 0, fmt.Errorf("bad unicode escape \\u%s", s)
	}
	u, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad unicode escape \\u%s", s[:4])
	}
	return rune(u), 4, nil
}
