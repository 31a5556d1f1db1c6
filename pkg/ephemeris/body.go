package ephemeris

// Body identifies a celestial body tracked by the chart engine.
type Body int

// The nine grahas of the Vedic chart, in traditional order.
const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Rahu
	Ketu
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Rahu", "Ketu",
}

// String returns the body's English name.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b is a tracked body.
func (b Body) Valid() bool {
	return b >= Sun && b <= Ketu
}

// Bodies returns the tracked bodies in traditional order.
func Bodies() []Body {
	return []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Rahu, Ketu}
}

// ParseBody parses a body name (case-sensitive English name as produced by
// String). Returns false if the name is unknown.
func ParseBody(name string) (Body, bool) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), true
		}
	}
	return 0, false
}

// nodeRule derives one body's position from another's. Rules are declared in
// a table and evaluated uniformly so nodal conventions stay independently
// testable instead of being embedded in calculation branches.
type nodeRule struct {
	source      Body    // body the provider actually computes
	lonOffset   float64 // degrees added to the source longitude
	negateSpeed bool    // report the negated source speed
	negateLat   bool    // report the negated source latitude
}

// nodeRules maps derived bodies to their derivation rules.
// Ketu is the descending lunar node: opposite Rahu with mirrored motion.
var nodeRules = map[Body]nodeRule{
	Ketu: {source: Rahu, lonOffset: 180, negateSpeed: true, negateLat: true},
}
