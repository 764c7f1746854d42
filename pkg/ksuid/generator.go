package ksuid

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Generator produces identifiers with the current timestamp and a random
// payload. The zero value reads from crypto/rand; tests can supply a
// deterministic Rand.
//
// A Generator is safe for concurrent use exactly to the extent its Rand
// reader is. crypto/rand's Reader is.
type Generator struct {
	// Rand supplies the 16 payload bytes per identifier. Nil means
	// crypto/rand.Reader. No quality guarantee beyond the reader's own.
	Rand io.Reader
}

// New returns a fresh identifier: current timestamp, random payload.
func (g *Generator) New() (KSUID, error) {
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}
	var payload [PayloadLen]byte
	if _, err := io.ReadFull(r, payload[:]); err != nil {
		return KSUID{}, fmt.Errorf("ksuid: read random payload: %w", err)
	}
	return FromPayload(payload)
}

var defaultGenerator Generator

// Generate returns a fresh identifier from the default crypto/rand-backed
// generator.
func Generate() (KSUID, error) {
	return defaultGenerator.New()
}
