// Package model defines the generation-service boundary: an ordered list
// of content parts in, plain response text out. Providers adapt this to
// their own request shape.
package model

import "context"

// Part is one segment of a multimodal request. Concrete part types
// implement the unexported isPart marker, keeping the set closed.
type Part interface{ isPart() }

// TextPart is a plain text segment.
type TextPart struct {
	Text string
}

func (TextPart) isPart() {}

// BlobPart is a raw binary segment (image or audio). Data is decoded
// bytes, not base64 — the transport-encoding conversion happens before a
// BlobPart is constructed.
type BlobPart struct {
	MIMEType string
	Data     []byte
}

func (BlobPart) isPart() {}

// Generator produces one text response for an ordered list of parts.
// Errors propagate so the caller can apply its own fallback policy.
type Generator interface {
	Generate(ctx context.Context, parts []Part) (string, error)
}

// StaticGenerator is a canned Generator for tests and examples. It
// records the parts of the last request it received.
type StaticGenerator struct {
	Response string
	Err      error

	// LastParts holds the parts from the most recent Generate call.
	LastParts []Part
}

// Generate returns the canned response or error.
func (g *StaticGenerator) Generate(ctx context.Context, parts []Part) (string, error) {
	g.LastParts = parts
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}
