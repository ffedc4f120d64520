// Package exif is a zero-copy reader for Exif metadata embedded in JPEG
// files.
//
// Given a byte buffer holding a whole JPEG image, NewReader locates the
// Exif APP1 segment, validates its TIFF header, and returns a Reader
// whose Next method pulls one semantically typed Tag at a time: camera
// make and model, the image description, the three Exif timestamps, an
// assembled GPS coordinate, a thumbnail descriptor, or - for everything
// this package does not give special meaning to - the raw (tag number,
// format, value) triple under TagKind Other.
//
// The reader never copies the input buffer. Every Cursor it hands around
// internally is a small value (a slice header plus an endianness tag)
// sharing storage with the caller's own byte slice, and every tag value
// - strings, byte slices, numeric component iterators - borrows from
// that same buffer for as long as the caller holds on to it.
//
// This package only reads metadata. It does not decode image pixels, and
// it does not write or remove metadata.
package exif
