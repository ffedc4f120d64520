package exif

// exifHeader is the fixed 6-byte literal every APP1 Exif payload begins
// with.
var exifHeader = [6]byte{'E', 'x', 'i', 'f', 0, 0}

const tiffMagic = 0x002A

// DecodeExifHeader validates an APP1 payload's Exif and TIFF headers and
// returns a Cursor positioned at the TIFF base - the byte immediately
// after "Exif\x00\x00" - carrying the endianness the TIFF header
// declared. All subsequent IFD offsets are measured from this base and
// it is never advanced by later stages: callers keep the returned value
// around purely to WithSkip from it.
func DecodeExifHeader(payload Cursor) (tiffBase Cursor, err error) {
	cur := payload

	header, err := cur.ReadBytes(6)
	if err != nil {
		return Cursor{}, err
	}
	if !bytesEqual(header, exifHeader[:]) {
		return Cursor{}, newErrf(ErrInvalidExifHeader, "got %v", header)
	}

	// tiffBase starts here: the TIFF header's endianness marker and magic
	// are read through cur, a separate copy, so the returned cursor's
	// position stays at the origin of all offsets.
	tiffBase = cur

	endianMarker, err := cur.ReadUint16()
	if err != nil {
		return Cursor{}, err
	}
	var endian Endianness
	switch endianMarker {
	case 0x4949:
		endian = LittleEndian
	case 0x4D4D:
		endian = BigEndian
	default:
		return Cursor{}, newErrf(ErrInvalidTiffHeader, "0x%04X", endianMarker)
	}
	tiffBase = tiffBase.WithEndianness(endian)
	cur = cur.WithEndianness(endian)

	magic, err := cur.ReadUint16()
	if err != nil {
		return Cursor{}, err
	}
	if magic != tiffMagic {
		return Cursor{}, newErrf(ErrInvalidTiffData, "0x%04X", magic)
	}

	return tiffBase, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
