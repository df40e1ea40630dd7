package realstats

import (
	"math"
)

// axiomTolerance is the agreement threshold for the demonstration
// helpers below.
const axiomTolerance = 1e-10

// AxiomCheck reports one algebraic identity evaluated two equivalent
// ways. The helpers exist to surface floating-point precision drift for
// the diagnostics panel; they carry no business-logic weight and must
// never gate a computation elsewhere.
type AxiomCheck struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
	Holds bool    `json:"holds"`
}

func check(left, right float64) AxiomCheck {
	return AxiomCheck{
		Left:  left,
		Right: right,
		Holds: math.Abs(left-right) < axiomTolerance,
	}
}

// CommutativeAddition evaluates a+b and b+a.
func CommutativeAddition(a, b float64) AxiomCheck {
	return check(a+b, b+a)
}

// CommutativeMultiplication evaluates a×b and b×a.
func CommutativeMultiplication(a, b float64) AxiomCheck {
	return check(a*b, b*a)
}

// AssociativeAddition evaluates (a+b)+c and a+(b+c).
func AssociativeAddition(a, b, c float64) AxiomCheck {
	return check((a+b)+c, a+(b+c))
}

// DistributiveProperty evaluates a×(b+c) and a×b + a×c.
func DistributiveProperty(a, b, c float64) AxiomCheck {
	return check(a*(b+c), a*b+a*c)
}
