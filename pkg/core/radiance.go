package core

// Radiance is an RGB light quantity. It is used for light powers, material
// coefficients and traced colors alike. All operations are componentwise.
type Radiance struct {
	R, G, B float64
}

// NewRadiance creates a radiance value from its channels
func NewRadiance(r, g, b float64) Radiance {
	return Radiance{R: r, G: g, B: b}
}

// Zero returns black
func Zero() Radiance {
	return Radiance{}
}

// White returns a grey radiance with every channel set to intensity
func White(intensity float64) Radiance {
	return Radiance{R: intensity, G: intensity, B: intensity}
}

// Add returns the componentwise sum
func (l Radiance) Add(other Radiance) Radiance {
	return Radiance{l.R + other.R, l.G + other.G, l.B + other.B}
}

// MulLight returns the componentwise product, used to attenuate light by a color
func (l Radiance) MulLight(other Radiance) Radiance {
	return Radiance{l.R * other.R, l.G * other.G, l.B * other.B}
}

// MulScalar scales every channel by s
func (l Radiance) MulScalar(s float64) Radiance {
	return Radiance{l.R * s, l.G * s, l.B * s}
}

// IsZero reports whether all channels are exactly zero
func (l Radiance) IsZero() bool {
	return l == Radiance{}
}
