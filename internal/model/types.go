package model

// Point3D is a vertex position. Its index in Model.Points is its only identity.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a projected vertex, stored at the same index as its source Point3D.
type Point2D struct {
	X, Y float64
}

// Face holds three point indices (a triangle).
type Face [3]int

// Edge is an unordered pair of point indices.
type Edge struct {
	A, B int
}

// Model holds parsed geometry. Treat it as read-only after Parse returns;
// transforms produce new slices instead of editing Points in place.
type Model struct {
	Points []Point3D
	Faces  []Face
}

// Policy decides what happens to a record, face or point that fails validation.
type Policy int

const (
	// FailFast aborts on the first invalid record.
	FailFast Policy = iota
	// SkipInvalid drops the offending record and reports it as a warning.
	SkipInvalid
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail"
	case SkipInvalid:
		return "skip"
	}
	return "unknown"
}

// ParsePolicy maps "fail" / "skip" to a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "fail", "":
		return FailFast, true
	case "skip":
		return SkipInvalid, true
	}
	return FailFast, false
}
