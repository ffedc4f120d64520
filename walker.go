package exif

// Section identifies which IFD a raw tag was read from.
type Section int

const (
	SectionIFD0 Section = iota
	SectionIFD1
	SectionGPS
	SectionSubIFD
	SectionInterop
)

func (s Section) String() string {
	switch s {
	case SectionIFD0:
		return "IFD0"
	case SectionIFD1:
		return "IFD1"
	case SectionGPS:
		return "GPS"
	case SectionSubIFD:
		return "SubIFD"
	case SectionInterop:
		return "Interop"
	default:
		return "unknown section"
	}
}

// Pointer tags: discovered in one section's tags, they name the byte
// offset (from the TIFF base) of another section.
const (
	tagGPSIFDPointer    = 0x8825 // in IFD0, points at GPS-IFD
	tagSubIFDPointer    = 0x8769 // in IFD0, points at SubIFD
	tagInteropIFDPointer = 0xA005 // in SubIFD, points at Interop-IFD
)

// sectionOffsets is the bounded work queue the multi-section walker
// drains: one optional offset per discoverable section, each slot
// consulted and cleared at most once. There is no recursion here - just
// a fixed-size table visited in a fixed order.
type sectionOffsets struct {
	ifd1    *uint32
	gps     *uint32
	subIFD  *uint32
	interop *uint32
}

// TaggedRawTag pairs a decoded raw tag with the section it came from.
type TaggedRawTag struct {
	Tag     RawTag
	Section Section
}

// MultiSectionWalker enumerates IFD0, IFD1, GPS-IFD, SubIFD and
// Interop-IFD in that fixed order. IFD1's offset comes from the next-IFD
// field trailing IFD0; the GPS/SubIFD/Interop offsets come from pointer
// tags encountered while walking IFD0 (and, for Interop, SubIFD). Each
// section is opened and drained at most once.
type MultiSectionWalker struct {
	tiffBase Cursor
	offsets  sectionOffsets

	active        *SectionReader
	activeSection Section
	activeOffset  uint32 // offset (from tiffBase) the active section was opened at; only meaningful for IFD0, to locate its trailing next-IFD pointer

	nextSection Section // which section to try opening once active is drained
	done        bool
}

// NewMultiSectionWalker builds a walker rooted at tiffBase, starting at
// IFD0, whose entries begin ifd0Offset bytes from tiffBase.
func NewMultiSectionWalker(tiffBase Cursor, ifd0Offset uint32) (*MultiSectionWalker, error) {
	cur, err := tiffBase.WithSkip(ifd0Offset)
	if err != nil {
		return nil, err
	}
	reader, err := openSection(cur, tiffBase)
	if err != nil {
		return nil, err
	}
	return &MultiSectionWalker{
		tiffBase:      tiffBase,
		active:        reader,
		activeSection: SectionIFD0,
		activeOffset:  ifd0Offset,
		nextSection:   SectionIFD1,
	}, nil
}

// Next returns the next (tag, section) pair, or more=false once every
// reachable section has been exhausted. An error opening a section (a
// bad pointer, an out-of-bounds offset) is surfaced once and the walker
// moves on to the next section in the queue rather than stopping - a
// broken GPS pointer must not hide IFD0 tags already emitted.
func (w *MultiSectionWalker) Next() (item TaggedRawTag, err error, more bool) {
	for {
		if w.done {
			return TaggedRawTag{}, nil, false
		}
		if w.active != nil {
			tag, terr, ok := w.active.Next()
			if ok {
				if terr == nil {
					w.observe(tag)
				}
				return TaggedRawTag{Tag: tag, Section: w.activeSection}, terr, true
			}
			// Active section exhausted.
			if w.activeSection == SectionIFD0 {
				w.discoverIFD1()
			}
			w.active = nil
		}

		opened, openErr := w.openNext()
		if openErr != nil {
			return TaggedRawTag{}, openErr, true
		}
		if !opened {
			w.done = true
			return TaggedRawTag{}, nil, false
		}
	}
}

// observe inspects a successfully decoded tag for one of the pointer
// tags in §3's table and records the target offset.
func (w *MultiSectionWalker) observe(tag RawTag) {
	switch {
	case w.activeSection == SectionIFD0 && tag.TagNumber == tagGPSIFDPointer:
		w.setOffset(&w.offsets.gps, tag)
	case w.activeSection == SectionIFD0 && tag.TagNumber == tagSubIFDPointer:
		w.setOffset(&w.offsets.subIFD, tag)
	case w.activeSection == SectionSubIFD && tag.TagNumber == tagInteropIFDPointer:
		w.setOffset(&w.offsets.interop, tag)
	}
}

func (w *MultiSectionWalker) setOffset(slot **uint32, tag RawTag) {
	it, err := tag.UIntComponents()
	if err != nil {
		return
	}
	v, ok, err := it.Next()
	if err != nil || !ok {
		return
	}
	off := v
	*slot = &off
}

// discoverIFD1 reads the u32 next-IFD pointer trailing IFD0 and, if
// nonzero, records it as IFD1's offset.
func (w *MultiSectionWalker) discoverIFD1() {
	ptrCur, err := w.tiffBase.WithSkip(w.activeOffset + w.active.ByteSize())
	if err != nil {
		return
	}
	ptrCur = ptrCur.WithEndianness(w.tiffBase.Endianness())
	next, err := ptrCur.ReadUint32()
	if err != nil || next == 0 {
		return
	}
	w.offsets.ifd1 = &next
}

// openNext opens the next section named by the fixed IFD0 -> IFD1 -> GPS
// -> SubIFD -> Interop order whose offset slot is populated, consuming
// that slot so it is never revisited. Returns opened=false once no slot
// remains.
func (w *MultiSectionWalker) openNext() (opened bool, err error) {
	for {
		switch w.nextSection {
		case SectionIFD1:
			w.nextSection = SectionGPS
			if w.offsets.ifd1 != nil {
				return w.openAt(SectionIFD1, *w.offsets.ifd1)
			}
		case SectionGPS:
			w.nextSection = SectionSubIFD
			if w.offsets.gps != nil {
				return w.openAt(SectionGPS, *w.offsets.gps)
			}
		case SectionSubIFD:
			w.nextSection = SectionInterop
			if w.offsets.subIFD != nil {
				return w.openAt(SectionSubIFD, *w.offsets.subIFD)
			}
		case SectionInterop:
			w.nextSection = Section(-1) // sentinel: no further sections
			if w.offsets.interop != nil {
				return w.openAt(SectionInterop, *w.offsets.interop)
			}
		default:
			return false, nil
		}
	}
}

func (w *MultiSectionWalker) openAt(section Section, offset uint32) (bool, error) {
	cur, err := w.tiffBase.WithSkip(offset)
	if err != nil {
		return true, err
	}
	reader, err := openSection(cur, w.tiffBase)
	if err != nil {
		return true, err
	}
	w.active = reader
	w.activeSection = section
	w.activeOffset = offset
	return true, nil
}
