package exif

// GpsPosition is an assembled geographic coordinate: a latitude and a
// longitude, each already signed (negative for S/W) and expressed in
// fractional degrees.
type GpsPosition struct {
	Lat float64
	Lon float64
}

const (
	tagGPSLatRef  = 0x0001
	tagGPSLat     = 0x0002
	tagGPSLonRef  = 0x0003
	tagGPSLon     = 0x0004
)

// gpsDegreeParts holds the partial state needed to assemble one
// coordinate (latitude or longitude): a reference letter and a
// degree/minute/second triple, each arriving as an independent tag.
type gpsDegreeParts struct {
	ref    string
	haveRef bool
	deg    [3]UIntFraction
	haveDeg bool
}

func (p *gpsDegreeParts) complete() bool { return p.haveRef && p.haveDeg }

// value computes (deg + min/60 + sec/3600) * sign, sign +1 for N/E and
// -1 for S/W.
func (p *gpsDegreeParts) value() (float64, error) {
	var sign float64
	switch p.ref {
	case "N", "E":
		sign = 1
	case "S", "W":
		sign = -1
	default:
		return 0, newErrf(ErrMalformedTag, "GPS reference %q is not one of N/S/E/W", p.ref)
	}
	deg := p.deg[0].Float64()
	min := p.deg[1].Float64()
	sec := p.deg[2].Float64()
	return (deg + min/60 + sec/3600) * sign, nil
}

// gpsCombiner stashes the four GPS tags (lat ref, lat degrees, lon ref,
// lon degrees) until both the latitude and longitude halves are complete,
// then yields one GpsPosition fact.
type gpsCombiner struct {
	lat gpsDegreeParts
	lon gpsDegreeParts
}

// observe feeds one GPS-section raw tag into the combiner. It returns a
// non-nil *GpsPosition only on the call that completes both halves;
// earlier sightings return nil, nil. A tag whose shape doesn't match what
// is expected (a reference that isn't text, a degree tag that isn't three
// fractions) is reported immediately rather than silently dropped, per
// §4.7 - the transformer does not wait for the group to complete before
// surfacing a shape mismatch.
func (g *gpsCombiner) observe(tag RawTag) (*GpsPosition, error) {
	switch tag.TagNumber {
	case tagGPSLatRef:
		ref, err := tag.Text()
		if err != nil {
			return nil, err
		}
		g.lat.ref, g.lat.haveRef = ref, true
	case tagGPSLat:
		deg, err := readDegreeTriple(tag)
		if err != nil {
			return nil, err
		}
		g.lat.deg, g.lat.haveDeg = deg, true
	case tagGPSLonRef:
		ref, err := tag.Text()
		if err != nil {
			return nil, err
		}
		g.lon.ref, g.lon.haveRef = ref, true
	case tagGPSLon:
		deg, err := readDegreeTriple(tag)
		if err != nil {
			return nil, err
		}
		g.lon.deg, g.lon.haveDeg = deg, true
	default:
		return nil, nil
	}

	if !g.lat.complete() || !g.lon.complete() {
		return nil, nil
	}

	lat, err := g.lat.value()
	if err != nil {
		return nil, err
	}
	lon, err := g.lon.value()
	if err != nil {
		return nil, err
	}
	return &GpsPosition{Lat: lat, Lon: lon}, nil
}

// readDegreeTriple reads the three UIntFraction components (degrees,
// minutes, seconds) the GPS latitude/longitude tags carry.
func readDegreeTriple(tag RawTag) ([3]UIntFraction, error) {
	it, err := tag.UIntFractionComponents()
	if err != nil {
		return [3]UIntFraction{}, err
	}
	comps, err := Drain(it)
	if err != nil {
		return [3]UIntFraction{}, err
	}
	if len(comps) != 3 {
		return [3]UIntFraction{}, newErrf(ErrMalformedTag, "GPS degree tag has %d components, expected 3", len(comps))
	}
	return [3]UIntFraction{comps[0], comps[1], comps[2]}, nil
}
