package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNumericSingularity is wrapped by SingularityError.
	ErrNumericSingularity = errors.New("numeric singularity")
)

// IndexError reports a face that references a point outside the point sequence.
type IndexError struct {
	Face  int // position of the face in the face list, -1 when unknown
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Face >= 0 {
		return fmt.Sprintf("face %d: point index %d outside [0, %d)", e.Face, e.Index, e.Len)
	}
	return fmt.Sprintf("point index %d outside [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// SingularityError reports a point whose depth equals the projection offset.
type SingularityError struct {
	Point  int // index of the point, -1 when unknown
	Z      float64
	Offset float64
}

func (e *SingularityError) Error() string {
	if e.Point >= 0 {
		return fmt.Sprintf("point %d: z=%g equals projection offset %g", e.Point, e.Z, e.Offset)
	}
	return fmt.Sprintf("z=%g equals projection offset %g", e.Z, e.Offset)
}

func (e *SingularityError) Unwrap() error { return ErrNumericSingularity }
