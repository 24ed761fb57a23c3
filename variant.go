package squircle

import (
	"fmt"
	"strings"
)

// Variant selects the sampling formula of a squircle.
type Variant uint8

const (
	// Superellipse samples a·sgn(cos t)·|cos t|^(2/n) with half extents.
	Superellipse Variant = iota

	// Complex samples the Superellipse formula on a unit extent, then
	// rescales the points so their largest |x| and |y| hit the half
	// extents exactly.
	Complex

	// FernandezGuasti samples a·sgn(cos t)·|cos t|^(4/(4+s)) with full
	// extents.
	FernandezGuasti
)

var variantNames = [...]string{
	Superellipse:    "superellipse",
	Complex:         "complex",
	FernandezGuasti: "fernandez-guasti",
}

// Variants returns every known variant in declaration order.
func Variants() []Variant {
	return []Variant{Superellipse, Complex, FernandezGuasti}
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return int(v) < len(variantNames)
}

// String returns the variant name.
func (v Variant) String() string {
	if v.Valid() {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant parses a variant name. Matching ignores case, spaces,
// hyphens and underscores, so "FernandezGuasti" and "fernandez_guasti"
// are both accepted.
func ParseVariant(s string) (Variant, error) {
	key := normalizeName(s)
	for i, name := range variantNames {
		if normalizeName(name) == key {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	return []byte(variantNames[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
