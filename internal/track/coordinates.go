package track

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedCoordinate is the sentinel behind every MalformedCoordinateError.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// MalformedCoordinateError reports a coordinate token that does not split
// into longitude, latitude and elevation.
type MalformedCoordinateError struct {
	Token string
	Index int // position of the token in its payload
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("coordinate %d %q: want lon,lat,ele", e.Index, e.Token)
}

func (e *MalformedCoordinateError) Unwrap() error {
	return ErrMalformedCoordinate
}

// Point is one track point. Values are kept as written in the source file
// so that precision survives conversion untouched.
type Point struct {
	Lon string
	Lat string
	Ele string
}

// String encodes p in KML order: longitude first.
func (p Point) String() string {
	return p.Lon + "," + p.Lat + "," + p.Ele
}

// ParseCoordinates splits a KML coordinates payload into points.
func ParseCoordinates(payload string) ([]Point, error) {
	tokens := strings.Fields(payload)
	points := make([]Point, 0, len(tokens))
	for i, tok := range tokens {
		fields := strings.Split(tok, ",")
		if len(fields) != 3 {
			return nil, &MalformedCoordinateError{Token: tok, Index: i}
		}
		points = append(points, Point{Lon: fields[0], Lat: fields[1], Ele: fields[2]})
	}
	return points, nil
}

// FormatCoordinates is the inverse of ParseCoordinates.
func FormatCoordinates(points []Point) string {
	tokens := make([]string, len(points))
	for i, p := range points {
		tokens[i] = p.String()
	}
	return strings.Join(tokens, " ")
}

// ReverseCoordinates returns payload with its tokens in reverse order,
// separated by single spaces. Tokens themselves are not inspected.
func ReverseCoordinates(payload string) string {
	tokens := strings.Fields(payload)
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return strings.Join(tokens, " ")
}
