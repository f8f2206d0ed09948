package errkind

import (
	"fmt"

	"github.com/pkg/errors"
)

// Closed enumeration of the failures the mesher can report.
type Kind string

const (
	KindNone Kind = ""

	// fatal, abort the run
	InvalidBoundingBox Kind = "INVALID_BOUNDING_BOX"
	EmptyRaster        Kind = "EMPTY_RASTER"
	DegenerateMesh     Kind = "DEGENERATE_MESH"
	InvalidOptions     Kind = "INVALID_OPTIONS"

	// recoverable, a single cell repaired in place
	DegenerateCell Kind = "DEGENERATE_CELL"

	// advisory only
	OversizedInput Kind = "OVERSIZED_INPUT"

	// decoder failures passed through as-is
	InvalidFormat     Kind = "INVALID_FORMAT"
	CorruptFile       Kind = "CORRUPT_FILE"
	ResourceExhausted Kind = "RESOURCE_EXHAUSTED"
)

func (k Kind) String() string {
	return string(k)
}

// Reports whether an error of this kind aborts a run
func (k Kind) IsFatal() bool {
	switch k {
	case DegenerateCell, OversizedInput, KindNone:
		return false
	}
	return true
}

// Reports whether the kind is one of the categories produced by a raster decoder
func (k Kind) IsDecoderKind() bool {
	return k == InvalidFormat || k == CorruptFile || k == ResourceExhausted
}

// Error carries its Kind from the point of failure
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Cause() error {
	return e.Err
}

// Builds a new Error of the given kind with a formatted message and a stack trace
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind: kind,
		Err:  errors.Errorf(format, args...),
	}
}

// Wraps err with the given kind and message. Returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind: kind,
		Err:  errors.Wrap(err, message),
	}
}

// Returns the Kind carried by err or by any error it wraps, KindNone otherwise
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// Reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Classifies a failure reported by a raster decoder. Errors already carrying a decoder kind
// pass through unchanged, anything else becomes InvalidFormat.
func FromDecoder(err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err).IsDecoderKind() {
		return err
	}
	return Wrap(InvalidFormat, err, "cannot decode raster")
}
