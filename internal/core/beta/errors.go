package beta

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain matches every *DomainError via errors.Is
	ErrDomain = errors.New("beta: argument outside physical domain")

	// ErrRange matches every *RangeError via errors.Is
	ErrRange = errors.New("beta: desired flow outside solver envelope")
)

// DomainError reports an argument outside its mathematically required range
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func domainErr(param string, v float64, reason string) error {
	return &DomainError{Param: param, Value: v, Reason: reason}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("beta: %s=%g %s", e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrDomain) hold
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// RangeError reports a desired flow no β in [BetaMin, BetaMax] can produce
// FlowAtMin and FlowAtMax are the flows at the envelope edges
type RangeError struct {
	Desired   float64
	FlowAtMin float64
	FlowAtMax float64
	BetaMin   float64
	BetaMax   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("beta: desired flow %g m³/s not reachable for beta in [%g, %g] (flow spans %g..%g m³/s)",
		e.Desired, e.BetaMin, e.BetaMax, e.FlowAtMin, e.FlowAtMax)
}

// Is makes errors.Is(err, ErrRange) hold
func (e *RangeError) Is(target error) bool { return target == ErrRange }
