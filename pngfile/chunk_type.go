package pngfile

import "fmt"

// ChunkType is a 4-byte PNG chunk type code. Every byte must be an ASCII
// letter; bit 5 of each byte carries one chunk property.
type ChunkType struct {
	code [4]byte
}

func ChunkTypeFromBytes(code [4]byte) (ChunkType, error) {
	for i, b := range code {
		if !isLetter(b) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is not an ascii letter", ErrInvalidChunkType, i)
		}
	}
	return ChunkType{code: code}, nil
}

func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is not 4 characters", ErrInvalidChunkType, s)
	}
	var code [4]byte
	copy(code[:], s)
	return ChunkTypeFromBytes(code)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (t ChunkType) Bytes() [4]byte {
	return t.code
}

func (t ChunkType) String() string {
	return string(t.code[:])
}

// IsCritical reports whether the chunk is required for decoding the
// image (bit 5 of byte 0 clear).
func (t ChunkType) IsCritical() bool {
	return t.code[0]&32 == 0
}

// IsPublic reports whether the type is a publicly registered one
// (bit 5 of byte 1 clear).
func (t ChunkType) IsPublic() bool {
	return t.code[1]&32 == 0
}

// IsReservedBitValid reports whether bit 5 of byte 2 is clear, as the
// PNG spec requires of conforming streams.
func (t ChunkType) IsReservedBitValid() bool {
	return t.code[2]&32 == 0
}

// IsSafeToCopy reports whether an editor may carry the chunk over to a
// modified image (bit 5 of byte 3 set).
func (t ChunkType) IsSafeToCopy() bool {
	return t.code[3]&32 != 0
}

func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}
