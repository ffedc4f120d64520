package exif

// Marker identifies a JPEG segment marker byte (the byte following the
// 0xFF lead-in).
type Marker byte

const (
	markerSOI  Marker = 0xD8
	markerEOI  Marker = 0xD9
	markerSOS  Marker = 0xDA
	markerDHT  Marker = 0xC4
	markerDQT  Marker = 0xDB
	markerDRI  Marker = 0xDD
	markerCOM  Marker = 0xFE
	markerAPP0 Marker = 0xE0
	markerAPP1 Marker = 0xE1
	markerAPPf Marker = 0xEF
	markerRST0 Marker = 0xD0
	markerRST7 Marker = 0xD7
	markerSOF0 Marker = 0xC0
	markerSOFf Marker = 0xCF
)

// IsAPP reports whether m is one of the 16 application markers APPn,
// n in [0,15].
func (m Marker) IsAPP() bool { return m >= markerAPP0 && m <= markerAPPf }

// APPIndex returns n for an APPn marker. Only meaningful when IsAPP(m).
func (m Marker) APPIndex() int { return int(m - markerAPP0) }

// IsSOF reports whether m is one of the start-of-frame markers SOFn,
// n in {0..3, 5..7, 9..15} - 0xC4 (DHT) and 0xC8 (reserved JPG extension)
// are excluded even though they fall inside the 0xC0..0xCF range.
func (m Marker) IsSOF() bool {
	return m >= markerSOF0 && m <= markerSOFf && m != markerDHT && m != 0xC8
}

// IsRST reports whether m is one of the restart markers RSTn, n in [0,7].
func (m Marker) IsRST() bool { return m >= markerRST0 && m <= markerRST7 }

// hasSize reports whether a segment with this marker carries a 2-byte
// big-endian payload length. SOI, EOI, SOS and the restart markers do not.
func (m Marker) hasSize() bool {
	switch {
	case m == markerSOI, m == markerEOI, m == markerSOS, m.IsRST():
		return false
	default:
		return true
	}
}

func (m Marker) String() string {
	switch {
	case m == markerSOI:
		return "SOI"
	case m == markerEOI:
		return "EOI"
	case m == markerSOS:
		return "SOS"
	case m == markerDHT:
		return "DHT"
	case m == markerDQT:
		return "DQT"
	case m == markerDRI:
		return "DRI"
	case m == markerCOM:
		return "COM"
	case m.IsAPP():
		return "APP" + itoa(m.APPIndex())
	case m.IsSOF():
		return "SOF" + itoa(int(m-markerSOF0))
	case m.IsRST():
		return "RST" + itoa(int(m-markerRST0))
	default:
		return "marker(0x" + hex(byte(m)) + ")"
	}
}

// itoa and hex avoid pulling in strconv/fmt for the handful of tiny-int
// and single-byte formattings Marker.String needs.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func hex(b byte) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[b>>4], digits[b&0xF]})
}

// Segment is one marker-delimited unit of a JPEG stream: the marker byte
// and a zero-copy view of its payload (empty for markers with no size).
type Segment struct {
	Marker  Marker
	Payload Cursor
}

type walkerState int

const (
	stateInitial walkerState = iota
	stateInside
	stateTerminal
)

// SegmentWalker streams the marker segments of a JPEG byte buffer,
// stopping at the Start-of-Scan marker: entropy-coded scan data that
// follows SOS is not length-prefixed and the walker does not attempt to
// skip over it.
type SegmentWalker struct {
	cur   Cursor
	state walkerState
}

// NewSegmentWalker builds a walker over data. data is expected to start
// at the SOI marker (0xFF 0xD8); the caller is responsible for locating
// the start of the JPEG stream within a larger buffer.
func NewSegmentWalker(data []byte) *SegmentWalker {
	return &SegmentWalker{cur: NewCursor(data, BigEndian), state: stateInitial}
}

// Next returns the next segment, or ok=false once the walker has emitted
// SOS or encountered an error. Once Next returns an error, the walker is
// terminal and further calls return ok=false with no error.
func (w *SegmentWalker) Next() (seg Segment, err error, ok bool) {
	if w.state == stateTerminal {
		return Segment{}, nil, false
	}
	w.state = stateInside

	marker, err := w.readMarker()
	if err != nil {
		w.state = stateTerminal
		return Segment{}, err, false
	}

	var payload Cursor
	if marker.hasSize() {
		length, err := w.cur.ReadUint16()
		if err != nil {
			w.state = stateTerminal
			return Segment{}, err, false
		}
		if length < 2 {
			w.state = stateTerminal
			return Segment{}, newErrf(ErrUnexpectedEOF, "segment length %d shorter than its own length field", length), false
		}
		payloadBytes, err := w.cur.ReadBytes(uint32(length) - 2)
		if err != nil {
			w.state = stateTerminal
			return Segment{}, err, false
		}
		payload = NewCursor(payloadBytes, BigEndian)
	}

	if marker == markerSOS {
		w.state = stateTerminal
	}
	return Segment{Marker: marker, Payload: payload}, nil, true
}

// readMarker consumes any 0xFF padding bytes (JPEG permits stuffing
// before a marker) and returns the marker byte that follows the first
// non-padding 0xFF.
func (w *SegmentWalker) readMarker() (Marker, error) {
	lead, err := w.cur.ReadByte()
	if err != nil {
		return 0, err
	}
	if lead != 0xFF {
		return 0, newErrf(ErrInvalidJPEGSegmentHeader, "expected 0xFF, found 0x%s", hex(lead))
	}
	for {
		b, err := w.cur.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == 0xFF {
			// padding stuffing byte; keep reading for the real marker
			continue
		}
		return Marker(b), nil
	}
}
