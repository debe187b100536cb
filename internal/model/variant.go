package model

import (
	"fmt"
	"strings"
)

// Variant is one of the eight symmetries of the square. Every variant of a
// magic square is magic with the same properties.
type Variant int

// Available Variant values.
const (
	VariantIdentity Variant = iota
	VariantRotate90
	VariantRotate180
	VariantRotate270
	VariantFlipHorizontal
	VariantFlipVertical
	VariantTranspose
	VariantAntiTranspose
)

var variantNames = [...]string{
	"identity",
	"rotate-90",
	"rotate-180",
	"rotate-270",
	"flip-horizontal",
	"flip-vertical",
	"transpose",
	"anti-transpose",
}

// AllVariants lists every symmetry in declaration order.
func AllVariants() []Variant {
	out := make([]Variant, 0, len(variantNames))
	for i := range variantNames {
		out = append(out, Variant(i))
	}

	return out
}

// Valid reports whether v names a known symmetry.
func (v Variant) Valid() bool {
	return v >= 0 && int(v) < len(variantNames)
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("variant(%d)", int(v))
	}

	return variantNames[v]
}

// ParseVariant accepts a variant name or its index.
func ParseVariant(s string) (Variant, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return VariantIdentity, true
	}

	for i, name := range variantNames {
		if name == s || fmt.Sprint(i) == s {
			return Variant(i), true
		}
	}

	return 0, false
}

// Apply returns the transformed copy of mx. The input is not modified.
func (v Variant) Apply(mx Matrix) Matrix {
	n := len(mx)
	out := NewMatrix(n)

	for r := range n {
		for c := range n {
			sr, sc := v.source(n, r, c)
			out[r][c] = mx[sr][sc]
		}
	}

	return out
}

// source maps a destination cell to the cell it is copied from.
func (v Variant) source(n, r, c int) (int, int) {
	last := n - 1

	switch v {
	case VariantRotate90:
		return last - c, r
	case VariantRotate180:
		return last - r, last - c
	case VariantRotate270:
		return c, last - r
	case VariantFlipHorizontal:
		return r, last - c
	case VariantFlipVertical:
		return last - r, c
	case VariantTranspose:
		return c, r
	case VariantAntiTranspose:
		return last - c, last - r
	case VariantIdentity:
		return r, c
	}

	return r, c
}

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("unknown variant %d", int(v))
	}

	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name or index.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, ok := ParseVariant(string(text))
	if !ok {
		return fmt.Errorf("unknown variant %q", text)
	}

	*v = parsed

	return nil
}
