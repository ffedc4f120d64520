package exif

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Endianness tags the byte order a Cursor reads multi-byte values under.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Cursor is a bounded, endian-aware, zero-copy view over a shared byte
// slice. It never owns the bytes it points at and never outlives the
// slice it was built from - copying a Cursor copies only the slice header
// and the endianness tag, never the underlying data.
//
// The With* operations return a new Cursor value and leave the receiver
// unchanged; the Read* methods advance the Cursor they are called on.
type Cursor struct {
	data   []byte
	endian Endianness
}

// NewCursor builds a Cursor over data, reading multi-byte values under
// endian.
func NewCursor(data []byte, endian Endianness) Cursor {
	return Cursor{data: data, endian: endian}
}

// Len returns the number of bytes remaining in the view.
func (c Cursor) Len() int { return len(c.data) }

// Bytes returns the remaining bytes of the view without consuming them.
// The returned slice shares storage with the Cursor's backing buffer and
// must not be modified.
func (c Cursor) Bytes() []byte { return c.data }

// Endianness returns the byte order this cursor reads multi-byte values
// under.
func (c Cursor) Endianness() Endianness { return c.endian }

// WithEndianness returns a copy of c whose declared byte order is endian.
// c itself is unchanged.
func (c Cursor) WithEndianness(endian Endianness) Cursor {
	return Cursor{data: c.data, endian: endian}
}

// WithSkip returns a copy of c advanced by n bytes. It fails with
// ErrUnexpectedEOF if n exceeds the remaining length.
func (c Cursor) WithSkip(n uint32) (Cursor, error) {
	if uint64(n) > uint64(len(c.data)) {
		return Cursor{}, newErrf(ErrUnexpectedEOF, "skip %d exceeds remaining %d bytes", n, len(c.data))
	}
	return Cursor{data: c.data[n:], endian: c.endian}, nil
}

// WithMaxLen returns a copy of c whose length is at most n bytes. It never
// fails: if n exceeds the current length, the length is left unchanged.
func (c Cursor) WithMaxLen(n uint32) Cursor {
	if uint64(n) >= uint64(len(c.data)) {
		return c
	}
	return Cursor{data: c.data[:n], endian: c.endian}
}

func (c *Cursor) take(n int) ([]byte, error) {
	if n > len(c.data) {
		return nil, newErrf(ErrUnexpectedEOF, "need %d bytes, have %d", n, len(c.data))
	}
	b := c.data[:n]
	c.data = c.data[n:]
	return b, nil
}

// ReadByte reads a single byte, advancing the cursor by 1. Byte-sized
// reads have no notion of endianness.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes returns a borrowed n-byte slice and advances the cursor by n.
// The returned slice shares storage with the underlying buffer.
func (c *Cursor) ReadBytes(n uint32) ([]byte, error) {
	return c.take(int(n))
}

// ReadString returns a borrowed UTF-8 view over the next n bytes and
// advances the cursor by n. It fails with ErrUnexpectedEOF both when fewer
// than n bytes remain and when the n bytes read are not valid UTF-8 -
// malformed text is treated the same as missing text (see DESIGN.md for
// why this does not introduce a ninth error kind).
func (c *Cursor) ReadString(n uint32) (string, error) {
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", newErrf(ErrUnexpectedEOF, "%d bytes are not valid UTF-8", n)
	}
	return string(b), nil
}

func (c *Cursor) ReadUint8() (uint8, error)   { return c.ReadByte() }
func (c *Cursor) ReadInt8() (int8, error) {
	b, err := c.ReadByte()
	return int8(b), err
}

func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return c.endian.order().Uint16(b), nil
}

func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return c.endian.order().Uint32(b), nil
}

func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

func (c *Cursor) ReadUint64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return c.endian.order().Uint64(b), nil
}

func (c *Cursor) ReadInt64() (int64, error) {
	v, err := c.ReadUint64()
	return int64(v), err
}

func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (c *Cursor) ReadFloat64() (float64, error) {
	v, err := c.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
