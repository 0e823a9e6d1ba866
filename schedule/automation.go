package schedule

// Automation is a parameter change event payload.
type Automation struct {
	// Value is the target parameter value.
	Value float64
	// Curve defines how the parameter approaches the value.
	Curve Curve
}

// Curve is an automation interpolation type.
type Curve int

const (
	// Step jumps to the value instantly.
	Step Curve = iota
	// Linear interpolates linearly.
	Linear
	// Exponential interpolates exponentially, suited for volume and
	// frequency.
	Exponential
	// SCurve interpolates along an s-shaped curve.
	SCurve
)

// String returns the curve name.
func (c Curve) String() string {
	switch c {
	case Step:
		return "step"
	case Linear:
		return "linear"
	case Exponential:
		return "exponential"
	case SCurve:
		return "s-curve"
	}
	return "unknown"
}
