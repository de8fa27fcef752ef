package geometry2D

import "fmt"

type CornerKind uint8

const (
	RightTop CornerKind = iota
	LeftTop
	RightBottom
	LeftBottom
)

var CornerPrintNames = []string{"RightTop", "LeftTop", "RightBottom", "LeftBottom"}

func (ck CornerKind) String() string {
	if int(ck) < len(CornerPrintNames) {
		return CornerPrintNames[ck]
	}
	return fmt.Sprintf("CornerKind(%d)", uint8(ck))
}

// Corner is the shared vertex of two consecutive segments of a loop.
type Corner struct {
	Point Coordinate
	Kind  CornerKind
}

func (c Corner) String() string {
	return fmt.Sprintf("%s%v", c.Kind, c.Point)
}

// InternalCorner classifies the junction s1->s2 of a pass through loop,
// where the wave lives inside the loop.
func InternalCorner(s1, s2 Segment) (c Corner, ok bool) {
	switch {
	case s1.Rightward() && s2.Downward():
		return Corner{s1.B, RightTop}, true
	case s1.Downward() && s2.Leftward():
		return Corner{s1.B, RightBottom}, true
	case s1.Upward() && s2.Rightward():
		return Corner{s1.B, LeftTop}, true
	case s1.Leftward() && s2.Upward():
		return Corner{s1.B, LeftBottom}, true
	}
	return
}

// ExternalCorner classifies the junction s1->s2 of a blocking loop, where
// the wave lives outside the loop.
func ExternalCorner(s1, s2 Segment) (c Corner, ok bool) {
	switch {
	case s1.Upward() && s2.Leftward():
		return Corner{s1.B, RightTop}, true
	case s1.Rightward() && s2.Upward():
		return Corner{s1.B, RightBottom}, true
	case s1.Leftward() && s2.Downward():
		return Corner{s1.B, LeftTop}, true
	case s1.Downward() && s2.Rightward():
		return Corner{s1.B, LeftBottom}, true
	}
	return
}

func ClassifyCorner(s1, s2 Segment, passThrough bool) (Corner, bool) {
	if passThrough {
		return InternalCorner(s1, s2)
	}
	return ExternalCorner(s1, s2)
}
