package pngfile

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthFieldSize = 4
	typeFieldSize   = 4
	crcFieldSize    = 4

	// fixed fields of every chunk record
	chunkOverhead = lengthFieldSize + typeFieldSize + crcFieldSize
)

// Chunk is one length-prefixed record of a PNG stream. The CRC-32 covers
// the type bytes followed by the data bytes and is computed once, at
// construction. A Chunk is never mutated after that.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

func NewChunk(chunkType ChunkType, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{
		chunkType: chunkType,
		data:      owned,
		crc:       chunkCRC(chunkType, owned),
	}
}

// chunkCRC is the zlib CRC-32 (polynomial 0xEDB88320) over type ++ data.
func chunkCRC(chunkType ChunkType, data []byte) uint32 {
	code := chunkType.Bytes()
	crc := crc32.ChecksumIEEE(code[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

type chunkReader struct {
	data []byte
	idx  int
}

func (r *chunkReader) tryAdvance(n int) ([]byte, error) {
	if r.idx+n > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInvalidChunk, n, r.idx, len(r.data)-r.idx)
	}
	r.idx += n
	return r.data[r.idx-n : r.idx], nil
}

// DecodeChunk reads one chunk from the front of data and reports how many
// bytes it consumed, so a caller can keep parsing the remainder.
func DecodeChunk(data []byte) (*Chunk, int, error) {
	r := &chunkReader{data: data}

	lengthBytes, err := r.tryAdvance(lengthFieldSize)
	if err != nil {
		return nil, 0, err
	}
	length := binary.BigEndian.Uint32(lengthBytes)

	typeBytes, err := r.tryAdvance(typeFieldSize)
	if err != nil {
		return nil, 0, err
	}
	var code [4]byte
	copy(code[:], typeBytes)
	chunkType, err := ChunkTypeFromBytes(code)
	if err != nil {
		return nil, 0, err
	}

	body, err := r.tryAdvance(int(length))
	if err != nil {
		return nil, 0, err
	}

	crcBytes, err := r.tryAdvance(crcFieldSize)
	if err != nil {
		return nil, 0, err
	}
	storedCRC := binary.BigEndian.Uint32(crcBytes)

	chunk := NewChunk(chunkType, body)
	if storedCRC != chunk.crc {
		return nil, 0, fmt.Errorf("%w: stored %08x, computed %08x", ErrInvalidCRC, storedCRC, chunk.crc)
	}
	return chunk, r.idx, nil
}

// Encode is the exact inverse of DecodeChunk:
// [length:4 BE][type:4][data:length][crc:4 BE].
func (c *Chunk) Encode() []byte {
	out := make([]byte, 0, chunkOverhead+len(c.data))
	out = binary.BigEndian.AppendUint32(out, c.Length())
	code := c.chunkType.Bytes()
	out = append(out, code[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

// Data is a read-only view of the chunk payload.
func (c *Chunk) Data() []byte {
	return c.data
}

func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString interprets the payload as UTF-8 text. Failing that never
// invalidates the chunk itself, framing works on raw bytes.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrInvalidUTF8
	}
	return string(c.data), nil
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes, crc %08x)", c.chunkType, c.Length(), c.crc)
}
