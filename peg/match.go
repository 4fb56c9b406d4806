package peg

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// The primitive matchers attempt a match at a byte offset and
// return the offset just past the match, or -1 after recording
// the failed expectation.

// Lit matches the literal s.
func (c *Context) Lit(pos int, s string) int {
	if strings.HasPrefix(c.text[pos:], s) {
		return pos + len(s)
	}
	c.Fail(pos, strconv.Quote(s))
	return -1
}

// Insens matches the literal s ignoring ASCII case.
func (c *Context) Insens(pos int, s string) int {
	if pos+len(s) <= len(c.text) {
		i := 0
		for i < len(s) && lowerASCII(c.text[pos+i]) == lowerASCII(s[i]) {
			i++
		}
		if i == len(s) {
			return pos + len(s)
		}
	}
	c.Fail(pos, "^"+strconv.Quote(s))
	return -1
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// Range matches one rune in the inclusive range [lo, hi].
func (c *Context) Range(pos int, lo, hi rune) int {
	r, w := utf8.DecodeRuneInString(c.text[pos:])
	if w > 0 && lo <= r && r <= hi {
		return pos + w
	}
	c.Fail(pos, strconv.QuoteRune(lo)+".."+strconv.QuoteRune(hi))
	return -1
}

// Any matches any single rune.
func (c *Context) Any(pos int) int {
	if _, w := utf8.DecodeRuneInString(c.text[pos:]); w > 0 {
		return pos + w
	}
	c.Fail(pos, "ANY")
	return -1
}

// SOI matches the start of the input without consuming.
func (c *Context) SOI(pos int) int {
	if pos == 0 {
		return pos
	}
	c.Fail(pos, "SOI")
	return -1
}

// EOI matches the end of the input without consuming.
func (c *Context) EOI(pos int) int {
	if pos == len(c.text) {
		return pos
	}
	c.Fail(pos, "EOI")
	return -1
}

// Newline matches "\r\n", "\n", or "\r".
func (c *Context) Newline(pos int) int {
	if strings.HasPrefix(c.text[pos:], "\r\n") {
		return pos + 2
	}
	if pos < len(c.text) && (c.text[pos] == '\n' || c.text[pos] == '\r') {
		return pos + 1
	}
	c.Fail(pos, "NEWLINE")
	return -1
}

func (c *Context) class(pos int, name string, ok func(byte) bool) int {
	if pos < len(c.text) && ok(c.text[pos]) {
		return pos + 1
	}
	c.Fail(pos, name)
	return -1
}

// Digit matches one of '0'-'9'.
func (c *Context) Digit(pos int) int {
	return c.class(pos, "ASCII_DIGIT", func(b byte) bool { return '0' <= b && b <= '9' })
}

// NonzeroDigit matches one of '1'-'9'.
func (c *Context) NonzeroDigit(pos int) int {
	return c.class(pos, "ASCII_NONZERO_DIGIT", func(b byte) bool { return '1' <= b && b <= '9' })
}

// BinDigit matches '0' or '1'.
func (c *Context) BinDigit(pos int) int {
	return c.class(pos, "ASCII_BIN_DIGIT", func(b byte) bool { return b == '0' || b == '1' })
}

// OctDigit matches one of '0'-'7'.
func (c *Context) OctDigit(pos int) int {
	return c.class(pos, "ASCII_OCT_DIGIT", func(b byte) bool { return '0' <= b && b <= '7' })
}

// HexDigit matches an ASCII hexadecimal digit.
func (c *Context) HexDigit(pos int) int {
	return c.class(pos, "ASCII_HEX_DIGIT", func(b byte) bool {
		return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
	})
}

// AlphaLower matches one of 'a'-'z'.
func (c *Context) AlphaLower(pos int) int {
	return c.class(pos, "ASCII_ALPHA_LOWER", func(b byte) bool { return 'a' <= b && b <= 'z' })
}

// AlphaUpper matches one of 'A'-'Z'.
func (c *Context) AlphaUpper(pos int) int {
	return c.class(pos, "ASCII_ALPHA_UPPER", func(b byte) bool { return 'A' <= b && b <= 'Z' })
}

// Alpha matches an ASCII letter.
func (c *Context) Alpha(pos int) int {
	return c.class(pos, "ASCII_ALPHA", func(b byte) bool {
		return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
	})
}

// Alnum matches an ASCII letter or digit.
func (c *Context) Alnum(pos int) int {
	return c.class(pos, "ASCII_ALPHANUMERIC", func(b byte) bool {
		return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
	})
}

// ASCII matches any ASCII character.
func (c *Context) ASCII(pos int) int {
	return c.class(pos, "ASCII", func(b byte) bool { return b < utf8.RuneSelf })
}
