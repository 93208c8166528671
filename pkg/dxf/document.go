package dxf

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

const (
	// DefaultHeader opens the ENTITIES section and leaves the first group code 0 open
	// for the first entity name.
	DefaultHeader = "0\nSECTION\n0\nENTITIES\n0\n"

	// DefaultFooter closes the ENTITIES section.
	DefaultFooter = "ENDSEC\n"
)

// Document holds the framing text written around the entity stream.
type Document struct {
	Header string
	Footer string
}

// DefaultDocument returns the single-layer framing used when nothing is configured.
func DefaultDocument() Document {
	return Document{Header: DefaultHeader, Footer: DefaultFooter}
}

// WriteHeader writes the document preamble.
func (d Document) WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, d.Header)
	return err
}

// WriteFooter writes the document postamble.
func (d Document) WriteFooter(w io.Writer) error {
	_, err := io.WriteString(w, d.Footer)
	return err
}

// Fingerprint returns a stable digest of the framing.
func (d Document) Fingerprint() string {
	h := sha256.New()
	io.WriteString(h, d.Header)
	h.Write([]byte{0})
	io.WriteString(h, d.Footer)
	return hex.EncodeToString(h.Sum(nil))[:16]
}
