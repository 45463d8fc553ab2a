// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errExprParse = errors.New("expression syntax error")

// A resolver maps identifiers such as register names to values.
type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

// Parse a numeric expression: a sequence of terms joined by '+' or '-'.
// A term is a number ($hex, 0xhex, %binary or decimal) or an identifier
// known to the resolver. The result wraps to 16 bits.
func parseExpr(expr string, r resolver) (uint16, error) {
	s := strings.Join(strings.Fields(expr), "")
	if s == "" {
		return 0, errExprParse
	}

	var total int64
	sign := int64(1)
	start := 0
	switch s[0] {
	case '-':
		sign, start = -1, 1
	case '+':
		start = 1
	}

	for i := start; i <= len(s); i++ {
		if i < len(s) && (s[i] != '+' && s[i] != '-' || i == start) {
			continue
		}

		v, err := parseTerm(s[start:i], r)
		if err != nil {
			return 0, err
		}
		total += sign * v

		if i < len(s) {
			sign = 1
			if s[i] == '-' {
				sign = -1
			}
			start = i + 1
		}
	}

	return uint16(total & 0xffff), nil
}

func parseTerm(t string, r resolver) (int64, error) {
	var digits string
	var base int
	switch {
	case t == "":
		return 0, errExprParse
	case t[0] == '$':
		digits, base = t[1:], 16
	case strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X"):
		digits, base = t[2:], 16
	case t[0] == '%':
		digits, base = t[1:], 2
	case t[0] >= '0' && t[0] <= '9':
		digits, base = t, 10
	default:
		return r.resolveIdentifier(t)
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, errors.Wrapf(errExprParse, "invalid number '%s'", t)
	}
	return int64(v), nil
}
