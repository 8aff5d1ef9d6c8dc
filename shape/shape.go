/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package shape classifies values of the closed Shape variant set.
package shape

import "fmt"

// Shape is a closed set of variants. The unexported marker keeps new variants
// inside this package, where Describe and Variants must be extended with them.
type Shape interface {
	isShape()
}

// Circle is a Shape with a radius.
type Circle struct {
	Radius int64 `json:"radius"`
}

// Rectangle is a Shape with two side lengths.
type Rectangle struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

func (Circle) isShape()    {}
func (Rectangle) isShape() {}

// Describe returns a human-readable description of s.
// It panics on a nil Shape or a nil variant pointer.
func Describe(s Shape) string {
	switch v := s.(type) {
	case Circle:
		return fmt.Sprintf("Circle with radius %d", v.Radius)
	case *Circle:
		if v != nil {
			return Describe(*v)
		}
	case Rectangle:
		return fmt.Sprintf("Rectangle with dimensions %d x %d", v.X, v.Y)
	case *Rectangle:
		if v != nil {
			return Describe(*v)
		}
	}
	panic(fmt.Sprintf("shape: unhandled variant %T", s))
}

// Variants returns the zero value of every variant.
func Variants() []Shape {
	return []Shape{Circle{}, Rectangle{}}
}
