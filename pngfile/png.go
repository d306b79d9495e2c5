// Package pngfile models a PNG byte stream at the container level: the
// fixed signature followed by a sequence of typed, CRC-checked chunks.
// It never interprets pixel data, only chunk framing.
package pngfile

import (
	"bytes"
	"fmt"
)

// Signature is the fixed 8-byte prefix of every PNG stream.
var Signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

// Png is an ordered chunk sequence. Beyond the signature and per-chunk
// CRCs it does not enforce full PNG structural legality; ordering policy
// (header first, end marker last) is the caller's concern.
type Png struct {
	chunks []*Chunk
}

func NewPng(chunks ...*Chunk) *Png {
	return &Png{chunks: append([]*Chunk(nil), chunks...)}
}

// DecodePng parses a whole PNG byte stream. The first chunk failure
// aborts the decode; no partial Png is ever returned.
func DecodePng(data []byte) (*Png, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature) {
		return nil, ErrInvalidSignature
	}
	p := &Png{}
	rest := data[len(Signature):]
	for len(rest) > 0 {
		chunk, n, err := DecodeChunk(rest)
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, chunk)
		rest = rest[n:]
	}
	return p, nil
}

// Encode is the exact inverse of DecodePng.
func (p *Png) Encode() []byte {
	out := append([]byte(nil), Signature...)
	for _, c := range p.chunks {
		out = append(out, c.Encode()...)
	}
	return out
}

func (p *Png) AppendChunk(c *Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk of the given type in sequence
// order.
func (p *Png) ChunkByType(t ChunkType) (*Chunk, bool) {
	for _, c := range p.chunks {
		if c.Type() == t {
			return c, true
		}
	}
	return nil, false
}

// RemoveChunkByType removes and returns the first chunk of the given
// type, keeping the remaining chunks in order. Later chunks of the same
// type are untouched.
func (p *Png) RemoveChunkByType(t ChunkType) (*Chunk, error) {
	for i, c := range p.chunks {
		if c.Type() == t {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, t)
}

// Chunks is a read-only view of the sequence in current order.
func (p *Png) Chunks() []*Chunk {
	return p.chunks
}
