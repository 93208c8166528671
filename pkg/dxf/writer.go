package dxf

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

// Precision is the number of decimals written for every coordinate.
const Precision = 3

// AppendLine appends the LINE record for seg to dst.
func AppendLine(dst []byte, seg domain.LineSegment) []byte {
	dst = append(dst, "LINE\n"...)
	dst = appendPair(dst, "10", seg.Start.X)
	dst = appendPair(dst, "20", seg.Start.Y)
	dst = appendPair(dst, "11", seg.End.X)
	dst = appendPair(dst, "21", seg.End.Y)
	return append(dst, "0\n"...)
}

func appendPair(dst []byte, code string, v float64) []byte {
	dst = append(dst, code...)
	dst = append(dst, '\n')
	switch {
	case math.IsNaN(v):
		dst = append(dst, "nan"...)
	case math.IsInf(v, 1):
		dst = append(dst, "inf"...)
	case math.IsInf(v, -1):
		dst = append(dst, "-inf"...)
	default:
		dst = strconv.AppendFloat(dst, v, 'f', Precision, 64)
	}
	return append(dst, '\n')
}

// Writer implements ports.SegmentSink on top of an io.Writer.
// Output is buffered; call Flush once the run is over.
type Writer struct {
	w     *bufio.Writer
	buf   []byte
	count int
}

// NewWriter creates a Writer emitting LINE records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Emit writes the LINE record for seg.
func (w *Writer) Emit(ctx context.Context, seg domain.LineSegment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.buf = AppendLine(w.buf[:0], seg)
	if _, err := w.w.Write(w.buf); err != nil {
		return err
	}
	w.count++
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Count returns the number of records emitted so far.
func (w *Writer) Count() int {
	return w.count
}
