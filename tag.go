package exif

// entrySize is the fixed on-wire size of one IFD entry: u16 tag, u16
// format, u32 count, 4-byte inline-value-or-offset.
const entrySize = 12

// UIntFraction is an unsigned (numerator, denominator) pair - format
// code 5.
type UIntFraction struct{ Num, Den uint32 }

// IntFraction is a signed (numerator, denominator) pair - format code 10.
type IntFraction struct{ Num, Den int32 }

// ComponentIterator lazily decodes the components of a multi-valued tag
// one at a time from a borrowed Cursor. It is finite and non-restartable:
// once count components have been yielded, every further call returns
// ok=false.
type ComponentIterator[T any] struct {
	cur   Cursor
	count uint32
	i     uint32
	read  func(*Cursor) (T, error)
}

func newComponentIterator[T any](cur Cursor, count uint32, read func(*Cursor) (T, error)) *ComponentIterator[T] {
	return &ComponentIterator[T]{cur: cur, count: count, read: read}
}

// Next returns the next component, or ok=false once count components
// have been produced. A historical revision of the reference
// implementation this package is modeled on advanced its index by
// reassigning it to the remaining count rather than incrementing it,
// which made every iterator yield at most one item; this implementation
// always advances by exactly one component per call.
func (it *ComponentIterator[T]) Next() (value T, ok bool, err error) {
	if it.i >= it.count {
		var zero T
		return zero, false, nil
	}
	v, err := it.read(&it.cur)
	if err != nil {
		var zero T
		return zero, false, err
	}
	it.i++
	return v, true, nil
}

// Remaining returns the number of components not yet produced.
func (it *ComponentIterator[T]) Remaining() uint32 { return it.count - it.i }

// Drain consumes the rest of the iterator into a slice. Provided as a
// convenience for the semantic transformer, which needs whole groups of
// components (e.g. a GPS degree/minute/second triple) at once rather
// than one at a time.
func Drain[T any](it *ComponentIterator[T]) ([]T, error) {
	out := make([]T, 0, it.Remaining())
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// RawTag is one decoded IFD entry: its tag number, its format, and a
// handle onto its value. The value handle never copies the underlying
// buffer; fetching the typed components happens lazily via the
// Xxx/XxxComponents accessors below, which may be called at most once
// meaningfully per RawTag for iterator-returning accessors (re-invoking
// one starts a fresh iterator over the same bytes, since the stored
// cursor itself is never mutated).
type RawTag struct {
	TagNumber uint16
	Format    Format
	Count     uint32
	value     Cursor
}

// decodeTag parses one 12-byte IFD entry from entryCur against tiffBase,
// which supplies the endianness and the origin all offset fields are
// relative to.
func decodeTag(entryCur Cursor, tiffBase Cursor) (RawTag, error) {
	entryCur = entryCur.WithEndianness(tiffBase.Endianness())

	tagNumber, err := entryCur.ReadUint16()
	if err != nil {
		return RawTag{}, err
	}
	formatCode, err := entryCur.ReadUint16()
	if err != nil {
		return RawTag{}, err
	}
	format := Format(formatCode)
	compSize, ok := bytesPerComponent(format)
	if !ok {
		return RawTag{}, newErrf(ErrInvalidValueFormat, "%d", formatCode)
	}
	count, err := entryCur.ReadUint32()
	if err != nil {
		return RawTag{}, err
	}

	totalBytes := uint64(compSize) * uint64(count)

	var valueCur Cursor
	if totalBytes <= 4 {
		valueCur = entryCur
	} else {
		offset, err := entryCur.ReadUint32()
		if err != nil {
			return RawTag{}, err
		}
		valueCur, err = tiffBase.WithSkip(offset)
		if err != nil {
			return RawTag{}, newErrf(ErrValueOutOfBounds, "offset %d", offset)
		}
	}

	if uint64(valueCur.Len()) < totalBytes {
		return RawTag{}, newErrf(ErrUnexpectedEOF, "tag %d needs %d bytes, value area has %d", tagNumber, totalBytes, valueCur.Len())
	}

	return RawTag{
		TagNumber: tagNumber,
		Format:    format,
		Count:     count,
		value:     valueCur.WithMaxLen(uint32(totalBytes)),
	}, nil
}

// Bytes returns the tag's raw bytes. Valid for FormatUByte, FormatBinary
// and FormatSignedByte.
func (t RawTag) Bytes() ([]byte, error) {
	switch t.Format {
	case FormatUByte, FormatBinary, FormatSignedByte:
	default:
		return nil, newErrf(ErrMalformedTag, "tag %d has format %s, not a byte format", t.TagNumber, t.Format)
	}
	cur := t.value
	return cur.ReadBytes(t.Count)
}

// Text returns the tag's value as a NUL-trimmed UTF-8 string. Valid only
// for FormatAsciiText.
func (t RawTag) Text() (string, error) {
	if t.Format != FormatAsciiText {
		return "", newErrf(ErrMalformedTag, "tag %d has format %s, not AsciiText", t.TagNumber, t.Format)
	}
	cur := t.value
	s, err := cur.ReadString(t.Count)
	if err != nil {
		return "", err
	}
	for len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return s, nil
}

func (t RawTag) checkFormat(want Format) error {
	if t.Format != want {
		return newErrf(ErrMalformedTag, "tag %d has format %s, expected %s", t.TagNumber, t.Format, want)
	}
	return nil
}

// UShortComponents returns a lazy iterator over the tag's UShort
// components.
func (t RawTag) UShortComponents() (*ComponentIterator[uint16], error) {
	if err := t.checkFormat(FormatUShort); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadUint16), nil
}

// ShortComponents returns a lazy iterator over the tag's Short
// components.
func (t RawTag) ShortComponents() (*ComponentIterator[int16], error) {
	if err := t.checkFormat(FormatShort); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadInt16), nil
}

// UIntComponents returns a lazy iterator over the tag's UInt components.
func (t RawTag) UIntComponents() (*ComponentIterator[uint32], error) {
	if err := t.checkFormat(FormatUInt); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadUint32), nil
}

// IntComponents returns a lazy iterator over the tag's Int components.
func (t RawTag) IntComponents() (*ComponentIterator[int32], error) {
	if err := t.checkFormat(FormatInt); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadInt32), nil
}

// FloatComponents returns a lazy iterator over the tag's Float
// components.
func (t RawTag) FloatComponents() (*ComponentIterator[float32], error) {
	if err := t.checkFormat(FormatFloat); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadFloat32), nil
}

// DoubleComponents returns a lazy iterator over the tag's Double
// components.
func (t RawTag) DoubleComponents() (*ComponentIterator[float64], error) {
	if err := t.checkFormat(FormatDouble); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, (*Cursor).ReadFloat64), nil
}

func readUIntFraction(c *Cursor) (UIntFraction, error) {
	num, err := c.ReadUint32()
	if err != nil {
		return UIntFraction{}, err
	}
	den, err := c.ReadUint32()
	if err != nil {
		return UIntFraction{}, err
	}
	return UIntFraction{Num: num, Den: den}, nil
}

func readIntFraction(c *Cursor) (IntFraction, error) {
	num, err := c.ReadInt32()
	if err != nil {
		return IntFraction{}, err
	}
	den, err := c.ReadInt32()
	if err != nil {
		return IntFraction{}, err
	}
	return IntFraction{Num: num, Den: den}, nil
}

// UIntFractionComponents returns a lazy iterator over the tag's
// UIntFraction components, each read as two sequential UInt fields.
func (t RawTag) UIntFractionComponents() (*ComponentIterator[UIntFraction], error) {
	if err := t.checkFormat(FormatUIntFraction); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, readUIntFraction), nil
}

// IntFractionComponents returns a lazy iterator over the tag's
// IntFraction components, each read as two sequential Int fields.
func (t RawTag) IntFractionComponents() (*ComponentIterator[IntFraction], error) {
	if err := t.checkFormat(FormatIntFraction); err != nil {
		return nil, err
	}
	return newComponentIterator(t.value, t.Count, readIntFraction), nil
}

// Float64 returns f.Num/f.Den as a float64, the form the GPS combiner
// needs to assemble a coordinate.
func (f UIntFraction) Float64() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}
