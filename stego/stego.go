// Package stego implements the message-hiding operations on top of the
// pngfile container model. Every operation takes and returns whole byte
// buffers; the caller owns file I/O.
package stego

import (
	"fmt"

	"pngstash/pngfile"
)

// ChunkInfo is one row of a chunk listing.
type ChunkInfo struct {
	Type   string
	Length uint32
}

// Hide appends a chunk of the given type carrying message and returns
// the re-encoded stream. Any syntactically valid 4-letter type is
// accepted; picking an ancillary one is the caller's job.
func Hide(pngBytes []byte, typ string, message []byte) ([]byte, error) {
	chunkType, err := pngfile.ChunkTypeFromString(typ)
	if err != nil {
		return nil, err
	}
	p, err := pngfile.DecodePng(pngBytes)
	if err != nil {
		return nil, err
	}
	p.AppendChunk(pngfile.NewChunk(chunkType, message))
	return p.Encode(), nil
}

// Extract recovers the payload of the first chunk of the given type as
// UTF-8 text.
func Extract(pngBytes []byte, typ string) (string, error) {
	chunkType, err := pngfile.ChunkTypeFromString(typ)
	if err != nil {
		return "", err
	}
	p, err := pngfile.DecodePng(pngBytes)
	if err != nil {
		return "", err
	}
	chunk, ok := p.ChunkByType(chunkType)
	if !ok {
		return "", fmt.Errorf("%w: %s", pngfile.ErrChunkNotFound, chunkType)
	}
	return chunk.DataAsString()
}

// Remove drops the first chunk of the given type and returns the
// re-encoded stream.
func Remove(pngBytes []byte, typ string) ([]byte, error) {
	chunkType, err := pngfile.ChunkTypeFromString(typ)
	if err != nil {
		return nil, err
	}
	p, err := pngfile.DecodePng(pngBytes)
	if err != nil {
		return nil, err
	}
	if _, err := p.RemoveChunkByType(chunkType); err != nil {
		return nil, err
	}
	return p.Encode(), nil
}

// ListChunks enumerates every chunk in sequence order.
func ListChunks(pngBytes []byte) ([]ChunkInfo, error) {
	p, err := pngfile.DecodePng(pngBytes)
	if err != nil {
		return nil, err
	}
	infos := make([]ChunkInfo, 0, len(p.Chunks()))
	for _, c := range p.Chunks() {
		infos = append(infos, ChunkInfo{Type: c.Type().String(), Length: c.Length()})
	}
	return infos, nil
}
