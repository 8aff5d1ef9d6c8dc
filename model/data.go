/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import "maps"

// Record kind names, used in errors, logs and metrics.
const (
	KindInner = "Inner"
	KindOuter = "Outer"
)

// Inner is the leaf record stored in the Inner collection.
type Inner struct {
	ID      string `json:"id" dynamodbav:"id"`
	Value   string `json:"value" dynamodbav:"value"`
	MyValue string `json:"my_value" dynamodbav:"my_value"`
}

// Outer is the composite record stored in the Outer collection.
// Inner and MyInner are copies, never references to stored Inner entries.
type Outer struct {
	ID         string            `json:"id" dynamodbav:"id"`
	Inner      Inner             `json:"inner" dynamodbav:"inner"`
	MyInner    Inner             `json:"my_inner" dynamodbav:"my_inner"`
	Extensions map[string]string `json:"extensions" dynamodbav:"extensions"`
}

// Key returns the collection key.
func (i Inner) Key() string { return i.ID }

// Clone returns a copy of i.
func (i Inner) Clone() Inner { return i }

// Key returns the collection key.
func (o Outer) Key() string { return o.ID }

// Clone returns a deep copy of o. A nil Extensions map is normalized to an empty one
// so that stored and decoded records compare equal.
func (o Outer) Clone() Outer {
	ext := make(map[string]string, len(o.Extensions))
	maps.Copy(ext, o.Extensions)
	return Outer{
		ID:         o.ID,
		Inner:      o.Inner.Clone(),
		MyInner:    o.MyInner.Clone(),
		Extensions: ext,
	}
}

// Equal reports whether o and other hold the same values.
// Nil and empty extension maps are equal.
func (o Outer) Equal(other Outer) bool {
	return o.ID == other.ID &&
		o.Inner == other.Inner &&
		o.MyInner == other.MyInner &&
		maps.Equal(o.Extensions, other.Extensions)
}
