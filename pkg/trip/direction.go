package trip

import (
	"fmt"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
)

// Direction is the heading of a road segment.
type Direction int

const (
	NorthToSouth Direction = iota // NS
	SouthToNorth                  // SN
	EastToWest                    // EW
	WestToEast                    // WE
)

var directionTokens = [...]string{"NS", "SN", "EW", "WE"}
var directionNames = [...]string{"south", "north", "west", "east"}

// ParseDirection parses a map file direction token.
func ParseDirection(s string) (Direction, error) {
	for i, tok := range directionTokens {
		if s == tok {
			return Direction(i), nil
		}
	}
	return 0, errs.New(errs.ErrCodeInvalidMap, "unknown direction %q (want NS, SN, EW or WE)", s)
}

// String returns the map file token, e.g. "NS".
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionTokens) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionTokens[d]
}

// FullName returns the heading as used in directions, e.g. "south" for NS.
func (d Direction) FullName() string {
	if d < 0 || int(d) >= len(directionNames) {
		return d.String()
	}
	return directionNames[d]
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return d ^ 1
}
