// Package settings holds the clock's single user-settings record and its
// persistence as one flat JSON blob.
package settings

// ClockType selects which face is shown.
type ClockType string

const (
	Digital ClockType = "digital"
	Analog  ClockType = "analog"
)

// Format is the digital clock's hour format.
type Format string

const (
	Format12 Format = "12"
	Format24 Format = "24"
)

// Theme selects one of the two static palettes.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Size is a three-step size tier shared by the digital and analog faces.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

var (
	diameters = map[Size]int{
		Small:  150,
		Medium: 300,
		Large:  500,
	}
	multipliers = map[Size]float64{
		Small:  0.8,
		Medium: 1.0,
		Large:  1.2,
	}
)

// Diameter returns the analog face diameter in pixels for the tier.
// Unknown tiers fall back to medium.
func (s Size) Diameter() int {
	if d, ok := diameters[s]; ok {
		return d
	}
	return diameters[Medium]
}

// Multiplier returns the digital font multiplier for the tier.
// Unknown tiers fall back to medium.
func (s Size) Multiplier() float64 {
	if m, ok := multipliers[s]; ok {
		return m
	}
	return multipliers[Medium]
}

func (s Size) valid() bool {
	_, ok := diameters[s]
	return ok
}

// ClockSettings is the whole user-facing configuration. It is stored and
// replaced as one record.
type ClockSettings struct {
	ClockType       ClockType `json:"clockType"`
	ClockFormat     Format    `json:"clockFormat"`
	Theme           Theme     `json:"theme"`
	DigitalSize     Size      `json:"size"`
	Opacity         int       `json:"opacity"`
	AnalogSize      Size      `json:"analogSize"`
	AnalogRoundness int       `json:"analogRoundness"`
	DraggingEnabled bool      `json:"draggingEnabled"`
}

// Defaults returns the record used when nothing usable is stored.
func Defaults() ClockSettings {
	return ClockSettings{
		ClockType:       Digital,
		ClockFormat:     Format12,
		Theme:           Dark,
		DigitalSize:     Medium,
		Opacity:         100,
		AnalogSize:      Medium,
		AnalogRoundness: 100,
		DraggingEnabled: true,
	}
}

// Normalize returns a copy with every enum mapped to a defined value and
// the percentages clamped to [0,100].
func (c ClockSettings) Normalize() ClockSettings {
	d := Defaults()

	if c.ClockType != Digital && c.ClockType != Analog {
		c.ClockType = d.ClockType
	}
	if c.ClockFormat != Format12 && c.ClockFormat != Format24 {
		c.ClockFormat = d.ClockFormat
	}
	if c.Theme != Dark && c.Theme != Light {
		c.Theme = d.Theme
	}
	if !c.DigitalSize.valid() {
		c.DigitalSize = Medium
	}
	if !c.AnalogSize.valid() {
		c.AnalogSize = Medium
	}
	c.Opacity = clampPercent(c.Opacity)
	c.AnalogRoundness = clampPercent(c.AnalogRoundness)

	return c
}

// Diameter is the analog face diameter for the current tier.
func (c ClockSettings) Diameter() int {
	return c.AnalogSize.Diameter()
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
