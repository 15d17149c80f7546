package objres

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidalware/objstore/objval"
)

// Lookup returns the value of the given header, and a boolean indicating whether it was present at all; an empty
// header value counts as present.
func Lookup(header http.Header, name string) (string, bool) {
	values := header.Values(name)
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// LookupInt returns the value of the given header parsed as an integer, <nil> when the header is absent or
// malformed.
func LookupInt(header http.Header, name string) *int64 {
	value, ok := Lookup(header, name)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// LookupUint returns the value of the given header parsed as an unsigned integer, <nil> when the header is absent or
// malformed.
func LookupUint(header http.Header, name string) *uint64 {
	value, ok := Lookup(header, name)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// LookupTime returns the value of the given header parsed as an HTTP time, <nil> when the header is absent or
// malformed.
func LookupTime(header http.Header, name string) *time.Time {
	value, ok := Lookup(header, name)
	if !ok {
		return nil
	}

	parsed, err := http.ParseTime(value)
	if err != nil {
		return nil
	}

	return &parsed
}

// LookupString returns the value of the given header, <nil> when absent.
func LookupString(header http.Header, name string) *string {
	value, ok := Lookup(header, name)
	if !ok {
		return nil
	}

	return &value
}

// LookupETag returns the entity tag with the surrounding double quotes stripped, <nil> when absent.
func LookupETag(header http.Header) *string {
	value, ok := Lookup(header, objval.HeaderETag)
	if !ok {
		return nil
	}

	trimmed := strings.Trim(value, `"`)

	return &trimmed
}
