package objval

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidByteRangeError is returned if a byte range is invalid for some reason.
type InvalidByteRangeError struct {
	ByteRange *ByteRange
}

// Error implements the 'error' interface.
func (e *InvalidByteRangeError) Error() string {
	return fmt.Sprintf("invalid byte range %d-%d", e.ByteRange.Start, e.ByteRange.End)
}

// ByteRange represents a byte range of an object in the HTTP range header format; an 'End' of zero means until the
// end of the object. Responses to range requests carry a 'Content-Range' header, which makes them ineligible for
// client-side decryption (see 'objread').
type ByteRange struct {
	Start int64
	End   int64
}

// Valid returns an error if the byte range is invalid, <nil> otherwise.
func (b *ByteRange) Valid() error {
	if b == nil || b.End == 0 || b.End >= b.Start {
		return nil
	}

	return &InvalidByteRangeError{ByteRange: b}
}

// ToOffsetLength returns the offset/length representation of this byte range, using the given length when the range
// is open ended.
func (b *ByteRange) ToOffsetLength(length int64) (int64, int64) {
	offset := b.Start

	if b.End != 0 {
		length = b.End - offset + 1
	}

	return offset, length
}

// ToRangeHeader returns the HTTP range header representation of this byte range.
func (b *ByteRange) ToRangeHeader() string {
	builder := &strings.Builder{}

	builder.WriteString("bytes=")
	builder.WriteString(strconv.FormatInt(b.Start, 10) + "-")

	if b.End != 0 {
		builder.WriteString(strconv.FormatInt(b.End, 10))
	}

	return builder.String()
}
