package dxf

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// ReadLines decodes the LINE entities found in a DXF entity stream (with or
// without framing). Entities other than LINE are skipped.
func ReadLines(data []byte) ([]domain.LineSegment, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))

	var (
		lines  []domain.LineSegment
		cur    *domain.LineSegment
		lineNo int
	)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimSpace(sc.Text()), true
	}

	for {
		code, ok := next()
		if !ok {
			break
		}

		switch code {
		case "LINE":
			cur = &domain.LineSegment{}
			continue
		case "0":
			if cur != nil {
				lines = append(lines, *cur)
				cur = nil
			}
			continue
		}

		// Bare entity names after a 0 group code (SECTION, ENDSEC, ...) close any open LINE.
		if _, err := strconv.Atoi(code); err != nil {
			if cur != nil {
				lines = append(lines, *cur)
				cur = nil
			}
			continue
		}

		value, ok := next()
		if !ok {
			return nil, fmt.Errorf("line %d: group code %s has no value", lineNo, code)
		}
		if cur == nil {
			continue
		}

		var target *float64
		switch code {
		case "10":
			target = &cur.Start.X
		case "20":
			target = &cur.Start.Y
		case "11":
			target = &cur.End.X
		case "21":
			target = &cur.End.Y
		default:
			continue
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value for group %s: %w", lineNo, code, err)
		}
		*target = v
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		lines = append(lines, *cur)
	}
	return lines, nil
}
