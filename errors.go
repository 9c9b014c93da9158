package zedgo

import "fmt"

// ErrCoordinateOutOfRange indicates that an accumulated point does not
// fit in the unsigned 32-bit coordinate domain. It is reported by
// Finish (or by a query that triggers a rebuild), never by Add.
type ErrCoordinateOutOfRange struct {
	ID   uint32 // Identifier of the offending point
	X, Y int64  // Coordinates as added
}

func (e *ErrCoordinateOutOfRange) Error() string {
	return fmt.Sprintf("coordinate out of range: point %d at (%d, %d)", e.ID, e.X, e.Y)
}

// ErrBoundOutOfRange indicates that a query rectangle bound does not
// fit in the unsigned 32-bit coordinate domain.
type ErrBoundOutOfRange struct {
	Name  string // Which bound: "xmin", "ymin", "xmax" or "ymax"
	Value int64
}

func (e *ErrBoundOutOfRange) Error() string {
	return fmt.Sprintf("query bound out of range: %s = %d", e.Name, e.Value)
}

// ErrMalformedRectangle indicates a query rectangle with inverted
// bounds (xmin > xmax or ymin > ymax).
type ErrMalformedRectangle struct {
	XMin, YMin, XMax, YMax int64
}

func (e *ErrMalformedRectangle) Error() string {
	return fmt.Sprintf("malformed rectangle: (%d, %d)-(%d, %d)", e.XMin, e.YMin, e.XMax, e.YMax)
}
