package exif

// MimeType names the format of an embedded thumbnail, as far as this
// reader can tell without decoding pixels.
type MimeType int

const (
	MimeUnknown MimeType = iota
	MimeJPEG
)

func (m MimeType) String() string {
	if m == MimeJPEG {
		return "image/jpeg"
	}
	return "application/octet-stream"
}

// Thumbnail describes where an embedded thumbnail image lives within the
// original buffer - an offset and length from the TIFF base, plus its
// mime type - without ever reading or decoding the thumbnail's pixels.
type Thumbnail struct {
	Mime   MimeType
	Offset uint32
	Length uint32
}

const (
	tagThumbnailOffset     = 0x0201 // IFD1
	tagThumbnailLength     = 0x0202 // IFD1
	tagCompression         = 0x0103 // IFD0
	compressionJPEG        = 6
)

// thumbnailCombiner stashes the three tags that together describe an
// embedded thumbnail until all three have been seen, then yields one
// Thumbnail fact.
type thumbnailCombiner struct {
	offset        uint32
	haveOffset    bool
	length        uint32
	haveLength    bool
	compression   uint16
	haveCompression bool
}

func (t *thumbnailCombiner) complete() bool {
	return t.haveOffset && t.haveLength && t.haveCompression
}

// observe feeds one raw tag into the combiner. section must be the
// section the tag was read from, since the three constituent tags live
// in different IFDs (offset/length in IFD1, compression in IFD0). It
// returns a non-nil *Thumbnail only on the call that completes the
// triple.
func (t *thumbnailCombiner) observe(section Section, tag RawTag) (*Thumbnail, error) {
	switch {
	case section == SectionIFD1 && tag.TagNumber == tagThumbnailOffset:
		v, err := firstUInt(tag)
		if err != nil {
			return nil, err
		}
		t.offset, t.haveOffset = v, true
	case section == SectionIFD1 && tag.TagNumber == tagThumbnailLength:
		v, err := firstUInt(tag)
		if err != nil {
			return nil, err
		}
		t.length, t.haveLength = v, true
	case section == SectionIFD0 && tag.TagNumber == tagCompression:
		v, err := firstUShort(tag)
		if err != nil {
			return nil, err
		}
		t.compression, t.haveCompression = v, true
	default:
		return nil, nil
	}

	if !t.complete() {
		return nil, nil
	}

	mime := MimeUnknown
	if t.compression == compressionJPEG {
		mime = MimeJPEG
	}
	return &Thumbnail{Mime: mime, Offset: t.offset, Length: t.length}, nil
}

func firstUInt(tag RawTag) (uint32, error) {
	it, err := tag.UIntComponents()
	if err != nil {
		return 0, err
	}
	v, ok, err := it.Next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, newErrf(ErrMalformedTag, "tag %d has no components", tag.TagNumber)
	}
	return v, nil
}

func firstUShort(tag RawTag) (uint16, error) {
	it, err := tag.UShortComponents()
	if err != nil {
		return 0, err
	}
	v, ok, err := it.Next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, newErrf(ErrMalformedTag, "tag %d has no components", tag.TagNumber)
	}
	return v, nil
}
