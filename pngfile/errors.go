package pngfile

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid png signature")
	ErrInvalidChunkType = errors.New("invalid chunk type")
	ErrInvalidChunk     = errors.New("invalid chunk")
	ErrInvalidCRC       = errors.New("invalid crc")
	ErrInvalidUTF8      = errors.New("chunk data is not valid utf8")
	ErrChunkNotFound    = errors.New("chunk not found")
)
