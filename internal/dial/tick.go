package dial

// TickClass is the kind of mark drawn for one integer on the scale.
type TickClass int

const (
	Normal TickClass = iota
	FiveStep
	TenStep
)

func (c TickClass) String() string {
	switch c {
	case Normal:
		return "normal"
	case FiveStep:
		return "five-step"
	case TenStep:
		return "ten-step"
	}
	return "unknown"
}

// Classify returns the class of tick i. Negative ticks use a Euclidean
// modulo, so -10 is a ten-step and -15 a five-step.
func Classify(i int) TickClass {
	switch {
	case mod(i, 10) == 0:
		return TenStep
	case mod(i, 5) == 0:
		return FiveStep
	default:
		return Normal
	}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
