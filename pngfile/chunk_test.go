package pngfile

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

const secretMessage = "This is where your secret message will be!"

// encoded "RuSt" chunk carrying secretMessage, with its known checksum
func testChunkBytes(t *testing.T) []byte {
	t.Helper()
	var buf []byte
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(secretMessage)))
	buf = append(buf, "RuSt"...)
	buf = append(buf, secretMessage...)
	buf = binary.BigEndian.AppendUint32(buf, 2882656334)
	return buf
}

func TestNewChunk(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	require.NoError(t, err)

	chunk := NewChunk(ct, []byte(secretMessage))
	require.Equal(t, uint32(42), chunk.Length())
	require.Equal(t, uint32(2882656334), chunk.CRC())
	require.Equal(t, ct, chunk.Type())
	require.Equal(t, []byte(secretMessage), chunk.Data())
}

func TestDecodeChunk(t *testing.T) {
	buf := testChunkBytes(t)

	chunk, n, err := DecodeChunk(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, uint32(42), chunk.Length())
	require.Equal(t, "RuSt", chunk.Type().String())
	require.Equal(t, uint32(2882656334), chunk.CRC())

	s, err := chunk.DataAsString()
	require.NoError(t, err)
	require.Equal(t, secretMessage, s)
}

func TestDecodeChunkTrailingInput(t *testing.T) {
	buf := testChunkBytes(t)
	full := append(append([]byte(nil), buf...), 0xde, 0xad, 0xbe, 0xef)

	_, n, err := DecodeChunk(full)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
}

func TestDecodeChunkBadCRC(t *testing.T) {
	buf := testChunkBytes(t)
	buf[len(buf)-1]++

	_, _, err := DecodeChunk(buf)
	require.ErrorIs(t, err, ErrInvalidCRC)
}

func TestDecodeChunkBitFlips(t *testing.T) {
	// a flip anywhere in the data or crc fields must be rejected
	for _, offset := range []int{8, 20, len(testChunkBytes(t)) - 2} {
		buf := testChunkBytes(t)
		buf[offset] ^= 0x01
		_, _, err := DecodeChunk(buf)
		require.ErrorIs(t, err, ErrInvalidCRC, "offset %d", offset)
	}
}

func TestDecodeChunkTruncated(t *testing.T) {
	buf := testChunkBytes(t)

	// too short for the fixed fields
	_, _, err := DecodeChunk(buf[:7])
	require.ErrorIs(t, err, ErrInvalidChunk)

	// declared length exceeds what is left
	_, _, err = DecodeChunk(buf[:20])
	require.ErrorIs(t, err, ErrInvalidChunk)

	_, _, err = DecodeChunk(nil)
	require.ErrorIs(t, err, ErrInvalidChunk)
}

func TestDecodeChunkBadType(t *testing.T) {
	buf := testChunkBytes(t)
	buf[6] = '5'

	_, _, err := DecodeChunk(buf)
	require.ErrorIs(t, err, ErrInvalidChunkType)
}

func TestChunkRoundTrip(t *testing.T) {
	ct, err := ChunkTypeFromString("teXt")
	require.NoError(t, err)

	for _, data := range [][]byte{nil, {}, {0x00}, []byte("hello"), {0xff, 0x00, 0xaa, 0x55}} {
		chunk := NewChunk(ct, data)
		decoded, n, err := DecodeChunk(chunk.Encode())
		require.NoError(t, err)
		require.Equal(t, len(chunk.Encode()), n)
		require.Equal(t, chunk.Type(), decoded.Type())
		require.Equal(t, chunk.Data(), decoded.Data())
		require.Equal(t, chunk.CRC(), decoded.CRC())
	}
}

func TestChunkDataNotUTF8(t *testing.T) {
	ct, err := ChunkTypeFromString("ruSt")
	require.NoError(t, err)

	chunk := NewChunk(ct, []byte{0xff, 0xfe, 0xfd})
	_, err = chunk.DataAsString()
	require.ErrorIs(t, err, ErrInvalidUTF8)

	// framing still works on the raw bytes
	decoded, _, err := DecodeChunk(chunk.Encode())
	require.NoError(t, err)
	require.Equal(t, chunk.Data(), decoded.Data())
}

func TestChunkImmutability(t *testing.T) {
	ct, err := ChunkTypeFromString("ruSt")
	require.NoError(t, err)

	data := []byte("hello")
	chunk := NewChunk(ct, data)
	data[0] = 'X'
	require.Equal(t, []byte("hello"), chunk.Data())
}
