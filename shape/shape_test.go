/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  []string
	}{
		{"circle", Circle{Radius: 1}, []string{"Circle", "1"}},
		{"rectangle", Rectangle{X: 2, Y: 3}, []string{"Rectangle", "2", "3"}},
		{"circle pointer", &Circle{Radius: 7}, []string{"Circle", "7"}},
		{"negative dimensions", Rectangle{X: -4, Y: 0}, []string{"Rectangle", "-4", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.shape)
			for _, part := range tt.want {
				assert.Contains(t, got, part)
			}
		})
	}
}

func TestDescribeExactText(t *testing.T) {
	assert.Equal(t, "Circle with radius 1", Describe(Circle{Radius: 1}))
	assert.Equal(t, "Rectangle with dimensions 2 x 3", Describe(Rectangle{X: 2, Y: 3}))
}

func TestEveryVariantIsDescribed(t *testing.T) {
	for _, v := range Variants() {
		assert.NotPanics(t, func() { Describe(v) }, "variant %T", v)
	}
}

func TestDescribeNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "shape: unhandled variant <nil>", func() { Describe(nil) })
	assert.PanicsWithValue(t, "shape: unhandled variant *shape.Circle", func() { Describe((*Circle)(nil)) })
	assert.PanicsWithValue(t, "shape: unhandled variant *shape.Rectangle", func() { Describe((*Rectangle)(nil)) })
}
