package exif

// SectionReader iterates the tags of a single IFD: a u16 count followed
// by that many 12-byte entries. It hands the tag decoder a fresh 12-byte
// window for each entry and never advances except by exactly entrySize
// bytes per call, regardless of whether the previous entry decoded
// successfully - one malformed entry does not stop the rest of the
// section from being read.
type SectionReader struct {
	entries  Cursor
	tiffBase Cursor
	count    uint16
	i        uint16
}

// openSection reads the u16 entry count at cur and returns a reader over
// the entries that follow. The reader's ByteSize lets callers locate the
// trailing next-IFD pointer.
func openSection(cur Cursor, tiffBase Cursor) (*SectionReader, error) {
	cur = cur.WithEndianness(tiffBase.Endianness())
	count, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	return &SectionReader{entries: cur, tiffBase: tiffBase, count: count}, nil
}

// ByteSize returns count*12 + 2, the number of bytes the section occupies
// including its leading count field - used to locate the u32 next-IFD
// pointer that immediately follows it.
func (s *SectionReader) ByteSize() uint32 {
	return uint32(s.count)*entrySize + 2
}

// Next decodes and returns the next raw tag in the section. more is
// false once all count entries have been produced or the section's own
// bytes ran out; a per-entry decode error (bad format code, value out of
// bounds, ...) is returned alongside more=true so the caller keeps
// pulling the remaining entries in the section - a single malformed
// entry does not poison the rest of the section.
func (s *SectionReader) Next() (tag RawTag, err error, more bool) {
	if s.i >= s.count {
		return RawTag{}, nil, false
	}
	entryBytes, err := s.entries.ReadBytes(entrySize)
	if err != nil {
		// Truncated section: the entries cursor itself ran out, so no
		// further entries can be read at all.
		s.i = s.count
		return RawTag{}, err, false
	}
	s.i++

	tag, err = decodeTag(NewCursor(entryBytes, s.tiffBase.Endianness()), s.tiffBase)
	return tag, err, true
}
