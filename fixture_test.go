package exif

import "encoding/binary"

// This file builds a small, fully self-consistent synthetic JPEG+Exif
// buffer used by several _test.go files. It is not a byte-for-byte replay
// of a real camera file; it exists purely to exercise every IFD the
// multi-section walker visits (IFD0, IFD1, GPS, SubIFD) plus an empty
// Interop IFD, with offsets computed by hand once and kept in sync with
// the comments below rather than discovered at runtime.

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// ifdEntry appends one 12-byte IFD entry. value must be exactly 4 bytes
// (the inline value or the offset), left-padded/truncated by the caller.
func ifdEntry(buf []byte, tag uint16, format Format, count uint32, value []byte) []byte {
	buf = append(buf, le16(tag)...)
	buf = append(buf, le16(uint16(format))...)
	buf = append(buf, le32(count)...)
	if len(value) != 4 {
		panic("ifdEntry: value must be exactly 4 bytes")
	}
	buf = append(buf, value...)
	return buf
}

func inlineBytes(b ...byte) []byte {
	v := make([]byte, 4)
	copy(v, b)
	return v
}

const (
	fixtureIfd0Offset    = 8
	fixtureIfd1Offset    = 86
	fixtureGpsOffset     = 116
	fixtureSubIfdOffset  = 170
	fixtureInteropOffset = 224
	fixtureHeapOffset    = 230

	fixtureModelOffset        = fixtureHeapOffset        // 230, 13 bytes
	fixtureLatDegOffset       = fixtureModelOffset + 13   // 243, 24 bytes
	fixtureLonDegOffset       = fixtureLatDegOffset + 24  // 267, 24 bytes
	fixtureModifyDateOffset   = fixtureLonDegOffset + 24  // 291, 20 bytes
	fixtureDateTimeOrigOffset = fixtureModifyDateOffset + 20 // 311, 20 bytes
	fixtureCreateDateOffset   = fixtureDateTimeOrigOffset + 20 // 331, 20 bytes
	fixtureThumbnailOffset    = fixtureCreateDateOffset + 20  // 351, 4 bytes
)

const (
	fixtureModifyDate       = "2024:01:02 03:04:05"
	fixtureDateTimeOriginal = "2023:12:31 23:59:58"
	fixtureCreateDate       = "2023:12:31 23:59:59"
)

// buildTiffBody returns the bytes starting at the TIFF base (i.e.
// immediately after "Exif\x00\x00"), little-endian throughout.
func buildTiffBody() []byte {
	var buf []byte
	buf = append(buf, 'I', 'I')
	buf = append(buf, le16(tiffMagic)...)
	buf = append(buf, le32(fixtureIfd0Offset)...)
	if len(buf) != fixtureIfd0Offset {
		panic("buildTiffBody: header size drifted")
	}

	// IFD0: Compression, ImageDescription, Make, Model, SubIFD ptr, GPS ptr
	buf = append(buf, le16(6)...) // count = 6
	buf = ifdEntry(buf, 0x0103, FormatUShort, 1, inlineBytes(6, 0))
	buf = ifdEntry(buf, 0x010E, FormatAsciiText, 3, inlineBytes('H', 'i', 0))
	buf = ifdEntry(buf, 0x010F, FormatAsciiText, 3, inlineBytes('C', 'o', 0))
	buf = ifdEntry(buf, 0x0110, FormatAsciiText, 13, le32(fixtureModelOffset))
	buf = ifdEntry(buf, 0x8769, FormatUInt, 1, le32(fixtureSubIfdOffset))
	buf = ifdEntry(buf, 0x8825, FormatUInt, 1, le32(fixtureGpsOffset))
	buf = append(buf, le32(fixtureIfd1Offset)...) // next IFD = IFD1
	if len(buf) != fixtureIfd1Offset {
		panic("buildTiffBody: IFD0 size drifted")
	}

	// IFD1: ThumbnailOffset, ThumbnailLength
	buf = append(buf, le16(2)...)
	buf = ifdEntry(buf, 0x0201, FormatUInt, 1, le32(fixtureThumbnailOffset))
	buf = ifdEntry(buf, 0x0202, FormatUInt, 1, le32(4))
	buf = append(buf, le32(0)...) // no IFD2
	if len(buf) != fixtureGpsOffset {
		panic("buildTiffBody: IFD1 size drifted")
	}

	// GPS-IFD: LatRef, LatDeg (3 fractions), LonRef, LonDeg (3 fractions)
	buf = append(buf, le16(4)...)
	buf = ifdEntry(buf, 0x0001, FormatAsciiText, 2, inlineBytes('N', 0))
	buf = ifdEntry(buf, 0x0002, FormatUIntFraction, 3, le32(fixtureLatDegOffset))
	buf = ifdEntry(buf, 0x0003, FormatAsciiText, 2, inlineBytes('W', 0))
	buf = ifdEntry(buf, 0x0004, FormatUIntFraction, 3, le32(fixtureLonDegOffset))
	buf = append(buf, le32(0)...)
	if len(buf) != fixtureSubIfdOffset {
		panic("buildTiffBody: GPS-IFD size drifted")
	}

	// SubIFD: ModifyDate, DateTimeOriginal, CreateDate, Interop ptr
	buf = append(buf, le16(4)...)
	buf = ifdEntry(buf, 0x0132, FormatAsciiText, 20, le32(fixtureModifyDateOffset))
	buf = ifdEntry(buf, 0x9003, FormatAsciiText, 20, le32(fixtureDateTimeOrigOffset))
	buf = ifdEntry(buf, 0x9004, FormatAsciiText, 20, le32(fixtureCreateDateOffset))
	buf = ifdEntry(buf, 0xA005, FormatUInt, 1, le32(fixtureInteropOffset))
	buf = append(buf, le32(0)...)
	if len(buf) != fixtureInteropOffset {
		panic("buildTiffBody: SubIFD size drifted")
	}

	// Interop-IFD: empty.
	buf = append(buf, le16(0)...)
	buf = append(buf, le32(0)...)
	if len(buf) != fixtureHeapOffset {
		panic("buildTiffBody: Interop-IFD size drifted")
	}

	// Heap data, in the order pointed to above.
	buf = append(buf, "SmartPhone X\x00"...) // 13 bytes
	buf = append(buf, fraction3(37, 0, 0)...) // lat: 37 deg exactly
	buf = append(buf, fraction3(122, 0, 0)...) // lon: 122 deg exactly
	buf = append(buf, fixtureModifyDate...)
	buf = append(buf, 0)
	buf = append(buf, fixtureDateTimeOriginal...)
	buf = append(buf, 0)
	buf = append(buf, fixtureCreateDate...)
	buf = append(buf, 0)
	buf = append(buf, "THMB"...) // 4-byte thumbnail stand-in

	if len(buf) != fixtureThumbnailOffset+4 {
		panic("buildTiffBody: total length drifted")
	}
	return buf
}

func fraction3(deg, min, sec uint32) []byte {
	var b []byte
	b = append(b, le32(deg)...)
	b = append(b, le32(1)...)
	b = append(b, le32(min)...)
	b = append(b, le32(1)...)
	b = append(b, le32(sec)...)
	b = append(b, le32(1)...)
	return b
}

// buildFixtureJPEG wraps buildTiffBody in an Exif APP1 segment inside a
// minimal (but structurally valid) JPEG byte stream.
func buildFixtureJPEG() []byte {
	tiff := buildTiffBody()

	app1Payload := append([]byte{'E', 'x', 'i', 'f', 0, 0}, tiff...)

	var jpeg []byte
	jpeg = append(jpeg, 0xFF, 0xD8) // SOI
	jpeg = append(jpeg, 0xFF, 0xE0, 0x00, 0x04, 'J', 'F') // fake APP0, 2-byte payload
	jpeg = append(jpeg, 0xFF, 0xE1)
	segLen := uint16(len(app1Payload) + 2)
	jpeg = append(jpeg, byte(segLen>>8), byte(segLen))
	jpeg = append(jpeg, app1Payload...)
	jpeg = append(jpeg, 0xFF, 0xDA, 0x00, 0x02) // SOS, no payload
	jpeg = append(jpeg, 0xAB, 0xCD)             // entropy-coded data, ignored
	jpeg = append(jpeg, 0xFF, 0xD9)             // EOI (never reached by the walker)
	return jpeg
}
