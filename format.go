package exif

// Format is a TIFF IFD entry's format code, one of the twelve values
// defined by the TIFF/Exif specification.
type Format uint16

const (
	FormatUByte        Format = 1
	FormatAsciiText    Format = 2
	FormatUShort       Format = 3
	FormatUInt         Format = 4
	FormatUIntFraction Format = 5
	FormatSignedByte   Format = 6
	FormatBinary       Format = 7
	FormatShort        Format = 8
	FormatInt          Format = 9
	FormatIntFraction  Format = 10
	FormatFloat        Format = 11
	FormatDouble       Format = 12
)

// bytesPerComponent returns the number of bytes one component of this
// format occupies, and whether the format code is a recognized value in
// [1,12].
func bytesPerComponent(f Format) (uint32, bool) {
	switch f {
	case FormatUByte, FormatAsciiText, FormatSignedByte, FormatBinary:
		return 1, true
	case FormatUShort, FormatShort:
		return 2, true
	case FormatUInt, FormatInt, FormatFloat:
		return 4, true
	case FormatUIntFraction, FormatIntFraction, FormatDouble:
		return 8, true
	default:
		return 0, false
	}
}

func (f Format) String() string {
	switch f {
	case FormatUByte:
		return "UByte"
	case FormatAsciiText:
		return "AsciiText"
	case FormatUShort:
		return "UShort"
	case FormatUInt:
		return "UInt"
	case FormatUIntFraction:
		return "UIntFraction"
	case FormatSignedByte:
		return "SignedByte"
	case FormatBinary:
		return "Binary"
	case FormatShort:
		return "Short"
	case FormatInt:
		return "Int"
	case FormatIntFraction:
		return "IntFraction"
	case FormatFloat:
		return "Float"
	case FormatDouble:
		return "Double"
	default:
		return "Unknown"
	}
}
