package corrections

import (
	"errors"
	"fmt"
)

// Kind selects one of the categorical lookup tables
type Kind uint8

const (
	KindTap Kind = iota
	KindMaterial
	KindOrifice
	numKinds
)

// Kinds lists every table in a stable order
var Kinds = [...]Kind{KindTap, KindMaterial, KindOrifice}

var kindNames = [numKinds]string{"tap", "material", "orifice"}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps "tap", "material" or "orifice" to its Kind
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("corrections: unknown table kind %q", s)
}

// ErrUnrecognizedCategory matches every *UnrecognizedCategoryError via errors.Is
var ErrUnrecognizedCategory = errors.New("corrections: unrecognized category")

// UnrecognizedCategoryError is returned by the strict lookups only
type UnrecognizedCategoryError struct {
	Kind Kind
	Key  string
}

func (e *UnrecognizedCategoryError) Error() string {
	return fmt.Sprintf("corrections: unrecognized %s %q", e.Kind, e.Key)
}

// Is makes errors.Is(err, ErrUnrecognizedCategory) hold
func (e *UnrecognizedCategoryError) Is(target error) bool { return target == ErrUnrecognizedCategory }
