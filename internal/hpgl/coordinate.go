package hpgl

import (
	"strconv"
	"strings"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// ParseCoordinate extracts the first X,Y pair from a motion command operand.
//
// The numeric region starts at the first digit or minus sign; anything before it is
// skipped. The first comma after that point separates X from Y. Each value is read
// permissively: the longest numeric prefix is used and trailing garbage is ignored,
// and a side with no numeric prefix reads as zero.
//
// Only the first pair is read even when the operand chains several.
func ParseCoordinate(operand string) (domain.Point, error) {
	start := -1
	for i := 0; i < len(operand); i++ {
		if isDigit(operand[i]) || operand[i] == '-' {
			start = i
			break
		}
	}
	if start < 0 {
		return domain.Point{}, domain.ErrMissingCoordinates
	}

	numeric := operand[start:]
	sep := strings.IndexByte(numeric, ',')
	if sep < 0 {
		return domain.Point{}, domain.ErrMissingSeparator
	}

	return domain.Point{
		X: parseLeadingFloat(numeric[:sep]),
		Y: parseLeadingFloat(numeric[sep+1:]),
	}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n'
}

// parseLeadingFloat reads the longest decimal number at the start of s, after
// optional leading whitespace. It returns 0 when s has no numeric prefix.
func parseLeadingFloat(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	begin := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	// Exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	// Out-of-range values come back as ±Inf along with a range error; keep the value.
	v, _ := strconv.ParseFloat(s[begin:i], 64)
	return v
}
