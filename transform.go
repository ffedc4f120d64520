package exif

// TagKind discriminates the closed set of semantic facts the transformer
// can emit.
type TagKind int

const (
	KindImageDescription TagKind = iota
	KindMake
	KindModel
	KindModifyDate
	KindDateTimeOriginal
	KindCreateDate
	KindGpsPosition
	KindThumbnail
	KindOther
)

// Tag is one semantically typed fact produced by the transformer. Exactly
// one of the Xxx fields is meaningful, selected by Kind; Raw is populated
// only for KindOther.
type Tag struct {
	Kind TagKind

	Text      string      // ImageDescription, Make, Model
	DateTime  DateTime    // ModifyDate, DateTimeOriginal, CreateDate
	GPS       GpsPosition // GpsPosition
	Thumbnail Thumbnail   // Thumbnail
	Raw       TaggedRawTag // Other
}

const (
	tagImageDescription = 0x010E // IFD0
	tagMake             = 0x010F // IFD0
	tagModel            = 0x0110 // IFD0
	tagModifyDate       = 0x0132 // SubIFD
	tagDateTimeOriginal = 0x9003 // SubIFD
	tagCreateDate       = 0x9004 // SubIFD
)

// SemanticTransformer wraps a MultiSectionWalker and turns its raw
// (tag, section) pairs into the closed Tag stream described by §4.7: a
// handful of tags are mapped straight through, the GPS and Thumbnail
// groups are assembled across several raw tags before they are emitted,
// and everything else passes through as KindOther.
type SemanticTransformer struct {
	walker *MultiSectionWalker
	gps    gpsCombiner
	thumb  thumbnailCombiner
}

// NewSemanticTransformer builds a transformer over walker.
func NewSemanticTransformer(walker *MultiSectionWalker) *SemanticTransformer {
	return &SemanticTransformer{walker: walker}
}

// Next returns the next semantic fact, or more=false once the underlying
// walker is exhausted. A raw tag that does not complete a multi-tag group
// (an early GPS or Thumbnail sighting) is consumed without producing a
// Tag; Next loops internally until it has a Tag to return or the walker
// is done.
func (t *SemanticTransformer) Next() (tag Tag, err error, more bool) {
	for {
		raw, rerr, ok := t.walker.Next()
		if !ok {
			return Tag{}, nil, false
		}
		if rerr != nil {
			return Tag{}, rerr, true
		}

		out, err := t.transform(raw)
		if err != nil {
			return Tag{}, err, true
		}
		if out != nil {
			return *out, nil, true
		}
		// Group not yet complete (or tag folded silently into combiner
		// state); keep pulling.
	}
}

func (t *SemanticTransformer) transform(item TaggedRawTag) (*Tag, error) {
	raw := item.Tag

	if item.Section == SectionGPS {
		pos, err := t.gps.observe(raw)
		if err != nil {
			return nil, err
		}
		if pos != nil {
			return &Tag{Kind: KindGpsPosition, GPS: *pos}, nil
		}
		if raw.TagNumber >= tagGPSLatRef && raw.TagNumber <= tagGPSLon {
			return nil, nil
		}
		return &Tag{Kind: KindOther, Raw: item}, nil
	}

	if item.Section == SectionIFD0 || item.Section == SectionIFD1 {
		thumb, err := t.thumb.observe(item.Section, raw)
		if err != nil {
			return nil, err
		}
		if thumb != nil {
			return &Tag{Kind: KindThumbnail, Thumbnail: *thumb}, nil
		}
	}

	switch {
	case item.Section == SectionIFD0 && raw.TagNumber == tagImageDescription:
		text, err := raw.Text()
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindImageDescription, Text: text}, nil

	case item.Section == SectionIFD0 && raw.TagNumber == tagMake:
		text, err := raw.Text()
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindMake, Text: text}, nil

	case item.Section == SectionIFD0 && raw.TagNumber == tagModel:
		text, err := raw.Text()
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindModel, Text: text}, nil

	case item.Section == SectionSubIFD && raw.TagNumber == tagModifyDate:
		dt, err := decodeDateTimeTag(raw)
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindModifyDate, DateTime: dt}, nil

	case item.Section == SectionSubIFD && raw.TagNumber == tagDateTimeOriginal:
		dt, err := decodeDateTimeTag(raw)
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindDateTimeOriginal, DateTime: dt}, nil

	case item.Section == SectionSubIFD && raw.TagNumber == tagCreateDate:
		dt, err := decodeDateTimeTag(raw)
		if err != nil {
			return nil, err
		}
		return &Tag{Kind: KindCreateDate, DateTime: dt}, nil

	// The thumbnail tags fold into combiner state above and never
	// surface as KindOther in their own right.
	case item.Section == SectionIFD1 && (raw.TagNumber == tagThumbnailOffset || raw.TagNumber == tagThumbnailLength):
		return nil, nil
	case item.Section == SectionIFD0 && raw.TagNumber == tagCompression:
		return nil, nil

	default:
		return &Tag{Kind: KindOther, Raw: item}, nil
	}
}

func decodeDateTimeTag(raw RawTag) (DateTime, error) {
	text, err := raw.Text()
	if err != nil {
		return DateTime{}, err
	}
	return parseDateTime(text)
}
