package exif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSection(entries ...[]byte) []byte {
	buf := le16(uint16(len(entries)))
	for _, e := range entries {
		buf = append(buf, e...)
	}
	return buf
}

func uintEntry(tag uint16, value uint32) []byte {
	return ifdEntry(nil, tag, FormatUInt, 1, le32(value))
}

func TestSectionReaderBasic(t *testing.T) {
	data := buildSection(uintEntry(1, 10), uintEntry(2, 20))
	tiffBase := NewCursor(make([]byte, 64), LittleEndian)
	sr, err := openSection(NewCursor(data, LittleEndian), tiffBase)
	require.NoError(t, err)
	require.Equal(t, uint32(2*entrySize+2), sr.ByteSize())

	tag, err, more := sr.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, uint16(1), tag.TagNumber)

	tag, err, more = sr.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, uint16(2), tag.TagNumber)

	_, err, more = sr.Next()
	require.NoError(t, err)
	require.False(t, more)
}

func TestSectionReaderSkipsMalformedEntry(t *testing.T) {
	bad := ifdEntry(nil, 99, Format(0xFF), 1, le32(0)) // unrecognized format code
	good := uintEntry(100, 42)
	data := buildSection(bad, good)
	sr, err := openSection(NewCursor(data, LittleEndian), NewCursor(make([]byte, 8), LittleEndian))
	require.NoError(t, err)

	_, err, more := sr.Next()
	require.Error(t, err)
	require.True(t, more, "a malformed entry must not stop the section")

	tag, err, more := sr.Next()
	require.NoError(t, err)
	require.True(t, more)
	require.Equal(t, uint16(100), tag.TagNumber)

	_, err, more = sr.Next()
	require.NoError(t, err)
	require.False(t, more)
}

// Scenario 4: a two-tag section emits exactly two tags in order.
func TestSectionReaderScenario4TwoTagSection(t *testing.T) {
	data := buildSection(uintEntry(209, 1), uintEntry(210, 2))
	sr, err := openSection(NewCursor(data, LittleEndian), NewCursor(make([]byte, 8), LittleEndian))
	require.NoError(t, err)

	var tags []uint16
	for {
		tag, err, more := sr.Next()
		require.NoError(t, err)
		if !more {
			break
		}
		tags = append(tags, tag.TagNumber)
	}
	require.Equal(t, []uint16{209, 210}, tags)
}

func TestSectionReaderCountZeroYieldsNoTags(t *testing.T) {
	data := le16(0)
	sr, err := openSection(NewCursor(data, LittleEndian), NewCursor(make([]byte, 8), LittleEndian))
	require.NoError(t, err)
	_, err, more := sr.Next()
	require.NoError(t, err)
	require.False(t, more)
}

func TestSectionReaderTruncatedEntries(t *testing.T) {
	// count says 2 entries but only one full entry's worth of bytes follow.
	data := append(le16(2), uintEntry(1, 10)...)
	sr, err := openSection(NewCursor(data, LittleEndian), NewCursor(make([]byte, 8), LittleEndian))
	require.NoError(t, err)

	_, err, more := sr.Next()
	require.NoError(t, err)
	require.True(t, more)

	_, err, more = sr.Next()
	require.Error(t, err)
	require.False(t, more, "truncated entry bytes end the section for good")
}
