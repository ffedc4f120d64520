package exif

// Reader is the single entry point most callers need: given a JPEG byte
// buffer, it wires together the segment walker, header decoder,
// multi-section walker and semantic transformer into one pull-based
// stream of Tag values, the way the reference exif package's Parse
// hides its own internal IFD machinery behind one Desc value.
type Reader struct {
	transformer *SemanticTransformer
}

// NewReader locates the Exif APP1 segment in data, validates its TIFF
// header and returns a Reader ready to stream tags. data is expected to
// start at the JPEG SOI marker.
func NewReader(data []byte) (*Reader, error) {
	payload, err := findExifPayload(data)
	if err != nil {
		return nil, err
	}

	tiffBase, err := DecodeExifHeader(payload)
	if err != nil {
		return nil, err
	}

	ifd0OffsetCur, err := tiffBase.WithSkip(4) // past the 2-byte endianness marker and 2-byte 0x002A magic
	if err != nil {
		return nil, err
	}
	ifd0OffsetCur = ifd0OffsetCur.WithEndianness(tiffBase.Endianness())
	ifd0Offset, err := ifd0OffsetCur.ReadUint32()
	if err != nil {
		return nil, err
	}

	walker, err := NewMultiSectionWalker(tiffBase, ifd0Offset)
	if err != nil {
		return nil, err
	}

	return &Reader{transformer: NewSemanticTransformer(walker)}, nil
}

// Next returns the next semantically typed Tag, or more=false once the
// stream is exhausted. An error surfaced here does not necessarily end
// the stream - see §7's propagation policy - callers should keep calling
// Next until more is false.
func (r *Reader) Next() (tag Tag, err error, more bool) {
	return r.transformer.Next()
}

// findExifPayload walks the JPEG segments in data looking for the APP1
// segment whose payload starts with the literal Exif header. A JPEG may
// carry more than one APP1 segment (e.g. one for Exif, one for XMP); this
// skips any APP1 whose payload is not Exif rather than treating the first
// APP1 encountered as authoritative.
func findExifPayload(data []byte) (Cursor, error) {
	walker := NewSegmentWalker(data)
	for {
		seg, err, ok := walker.Next()
		if err != nil {
			return Cursor{}, err
		}
		if !ok {
			return Cursor{}, newErr(ErrInvalidExifHeader, "no Exif APP1 segment found before SOS")
		}
		if seg.Marker != markerAPP1 {
			continue
		}
		payloadBytes := seg.Payload.Bytes()
		if len(payloadBytes) < len(exifHeader) {
			continue
		}
		if bytesEqual(payloadBytes[:len(exifHeader)], exifHeader[:]) {
			return seg.Payload, nil
		}
	}
}
