package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Record tags recognised by the parser. Lines starting with anything else are ignored.
const (
	TagPoint = "point"
	TagFace  = "face"
)

// Parse reads point/face records and fails on the first malformed one.
func Parse(r io.Reader) (*Model, error) {
	m, _, err := ParseWithPolicy(r, FailFast)
	return m, err
}

// ParseString is Parse over an in-memory blob.
func ParseString(s string) (*Model, error) {
	return Parse(strings.NewReader(s))
}

// ParseWithPolicy reads the whole input before returning, so faces may
// reference points that appear later in the text. With SkipInvalid every
// malformed record is dropped and returned in warnings.
func ParseWithPolicy(r io.Reader, policy Policy) (*Model, []error, error) {
	m := &Model{}
	var warnings []error

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		tag := fields[0]
		if tag != TagPoint && tag != TagFace {
			continue
		}

		vals, err := parseTriple(line, tag, fields[1:])
		if err == nil && tag == TagPoint {
			err = checkFinite(line, tag, fields[1:], vals)
		}
		if err == nil && tag == TagFace {
			err = checkIndexRange(line, tag, fields[1:], vals)
		}
		if err != nil {
			if policy == FailFast {
				return nil, nil, err
			}
			warnings = append(warnings, err)
			continue
		}

		switch tag {
		case TagPoint:
			m.Points = append(m.Points, Point3D{X: vals[0], Y: vals[1], Z: vals[2]})
		case TagFace:
			// Indices are truncated toward zero.
			m.Faces = append(m.Faces, Face{int(vals[0]), int(vals[1]), int(vals[2])})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("model: read: %w", err)
	}

	return m, warnings, nil
}

func parseTriple(line int, tag string, fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 3 {
		return out, &RecordError{
			Line:   line,
			Tag:    tag,
			Reason: fmt.Sprintf("want 3 numeric fields, got %d", len(fields)),
		}
	}
	for i := 0; i < 3; i++ {
		if isHex(fields[i]) {
			return out, &RecordError{Line: line, Tag: tag, Field: fields[i], Reason: "hexadecimal not allowed"}
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, &RecordError{Line: line, Tag: tag, Field: fields[i], Reason: "not a number"}
		}
		out[i] = v
	}
	return out, nil
}

// isHex reports a 0x prefix after an optional sign. strconv accepts hex
// floats, the record format does not.
func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func checkFinite(line int, tag string, fields []string, vals [3]float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &RecordError{Line: line, Tag: tag, Field: fields[i], Reason: "not finite"}
		}
	}
	return nil
}

// checkIndexRange rejects values that cannot be converted to an int index.
// Range against the point count is checked later, once all points are known.
func checkIndexRange(line int, tag string, fields []string, vals [3]float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.Abs(v) > math.MaxInt32 {
			return &RecordError{Line: line, Tag: tag, Field: fields[i], Reason: "not a usable index"}
		}
	}
	return nil
}
