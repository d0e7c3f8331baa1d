// Package scan reads integers written the way C's scanf "%i" accepts them.
//
// A number is optional leading whitespace, an optional sign and then either
// a "0x" prefixed hexadecimal, a "0" prefixed octal or a decimal literal.
// Values must fit into a 32-bit C int.
package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

var (
	// ErrNoInput is returned when the input ends before a number starts.
	ErrNoInput = errors.New("no input")
	// ErrSyntax is returned when the input does not start with a number.
	ErrSyntax = errors.New("invalid integer")
	// ErrRange is returned when the number does not fit into a C int.
	ErrRange = errors.New("integer out of range")
)

// Int reads one integer from r.
//
// Reading stops at the first byte that cannot continue the number. When r is
// an io.ByteScanner that byte is left unread; otherwise r is wrapped in a
// buffered reader and the remaining input is not recoverable.
func Int(r io.Reader) (int, error) {
	br, ok := r.(io.ByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}
	return (&scanner{r: br}).int()
}

// Parse parses s as a single integer, allowing surrounding whitespace only.
func Parse(s string) (int, error) {
	r := strings.NewReader(s)
	v, err := Int(r)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}

	rest, _ := io.ReadAll(r)
	if strings.TrimSpace(string(rest)) != "" {
		return 0, fmt.Errorf("parse %q: trailing %q: %w", s, rest, ErrSyntax)
	}
	return v, nil
}

type scanner struct {
	r io.ByteScanner
}

func (s *scanner) int() (int, error) {
	c, err := s.skipSpace()
	if err != nil {
		return 0, err
	}

	negative := false
	if c == '+' || c == '-' {
		negative = c == '-'
		if c, err = s.next(); err != nil {
			return 0, ErrSyntax
		}
	}

	base := uint64(10)
	digits := 0
	if c == '0' {
		digits++
		base = 8
		c, err = s.next()
		if err == nil && (c == 'x' || c == 'X') {
			base = 16
			c, err = s.next()
		}
	}

	var value uint64
	for err == nil {
		d, ok := digit(c, base)
		if !ok {
			s.r.UnreadByte()
			break
		}
		digits++

		value = value*base + d
		if value > math.MaxInt32+1 {
			return 0, ErrRange
		}
		c, err = s.next()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	if digits == 0 {
		return 0, ErrSyntax
	}
	if !negative && value > math.MaxInt32 {
		return 0, ErrRange
	}
	if negative {
		return -int(value), nil
	}
	return int(value), nil
}

func (s *scanner) skipSpace() (byte, error) {
	for {
		c, err := s.next()
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

func (s *scanner) next() (byte, error) {
	return s.r.ReadByte()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func digit(c byte, base uint64) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}
