// Package easing provides the catalog of named cubic-Bézier timing curves.
//
// A [Curve] is defined by two control points and maps normalized time to
// normalized progress:
//
//	curve, ok := easing.ByName("easeOutCubic")
//	progress := curve.Ease(0.5)
//
// The catalog contains 24 presets (sine, quad, cubic, quart, quint, expo,
// circ and back families, each with in/out/inOut variants). [InOutSine] is
// the default curve used by timeline constructors.
package easing
