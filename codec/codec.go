/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package codec converts the legacy JSON text encoding of records into typed
// values and back. Decoding is strict about presence: every field is required.
//
// Field names match exactly. Keys that differ only in case are unknown and
// ignored, a known key given twice is an error, and the text must be valid UTF-8.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/suparena/structregistry/errors"
	"github.com/suparena/structregistry/model"
)

// innerWire mirrors model.Inner with pointer fields so absent keys can be told
// apart from empty strings.
type innerWire struct {
	// Required: true
	ID *string

	// Required: true
	Value *string

	// Required: true
	MyValue *string
}

type outerWire struct {
	// Required: true
	ID *string

	// Required: true
	Inner *innerWire

	// Required: true
	MyInner *innerWire

	// Required: true
	Extensions map[string]string
}

// fieldFunc decodes the value of the field at path from dec.
type fieldFunc func(dec *json.Decoder, path string) error

// DecodeInner parses text into an Inner. Failures are *errors.DecodeError.
func DecodeInner(text string) (model.Inner, error) {
	var w innerWire
	if err := decode(text, w.fields()); err != nil {
		return model.Inner{}, errors.NewDecodeError(model.KindInner, err)
	}
	inner, err := w.toModel("")
	if err != nil {
		return model.Inner{}, errors.NewDecodeError(model.KindInner, err)
	}
	return inner, nil
}

// DecodeOuter parses text into an Outer. Failures are *errors.DecodeError.
func DecodeOuter(text string) (model.Outer, error) {
	var w outerWire
	if err := decode(text, w.fields()); err != nil {
		return model.Outer{}, errors.NewDecodeError(model.KindOuter, err)
	}
	outer, err := w.toModel()
	if err != nil {
		return model.Outer{}, errors.NewDecodeError(model.KindOuter, err)
	}
	return outer, nil
}

// EncodeInner renders inner in the legacy text encoding.
func EncodeInner(inner model.Inner) (string, error) {
	b, err := json.Marshal(inner)
	if err != nil {
		return "", fmt.Errorf("failed to encode Inner: %w", err)
	}
	return string(b), nil
}

// EncodeOuter renders outer in the legacy text encoding. A nil extension map is
// written as an empty object so the output decodes again.
func EncodeOuter(outer model.Outer) (string, error) {
	b, err := json.Marshal(outer.Clone())
	if err != nil {
		return "", fmt.Errorf("failed to encode Outer: %w", err)
	}
	return string(b), nil
}

func (w *innerWire) toModel(path string) (model.Inner, error) {
	switch {
	case w.ID == nil:
		return model.Inner{}, missingField(path, "id")
	case w.Value == nil:
		return model.Inner{}, missingField(path, "value")
	case w.MyValue == nil:
		return model.Inner{}, missingField(path, "my_value")
	}
	return model.Inner{ID: *w.ID, Value: *w.Value, MyValue: *w.MyValue}, nil
}

func (w *outerWire) toModel() (model.Outer, error) {
	switch {
	case w.ID == nil:
		return model.Outer{}, missingField("", "id")
	case w.Inner == nil:
		return model.Outer{}, missingField("", "inner")
	case w.MyInner == nil:
		return model.Outer{}, missingField("", "my_inner")
	case w.Extensions == nil:
		return model.Outer{}, missingField("", "extensions")
	}

	inner, err := w.Inner.toModel("inner.")
	if err != nil {
		return model.Outer{}, err
	}
	myInner, err := w.MyInner.toModel("my_inner.")
	if err != nil {
		return model.Outer{}, err
	}

	return model.Outer{
		ID:         *w.ID,
		Inner:      inner,
		MyInner:    myInner,
		Extensions: w.Extensions,
	}, nil
}

func missingField(path, name string) error {
	return fmt.Errorf("missing field %q", path+name)
}

func (w *innerWire) fields() map[string]fieldFunc {
	return map[string]fieldFunc{
		"id":       stringField(&w.ID),
		"value":    stringField(&w.Value),
		"my_value": stringField(&w.MyValue),
	}
}

func (w *outerWire) fields() map[string]fieldFunc {
	return map[string]fieldFunc{
		"id":         stringField(&w.ID),
		"inner":      innerField(&w.Inner),
		"my_inner":   innerField(&w.MyInner),
		"extensions": mapField(&w.Extensions),
	}
}

func stringField(dst **string) fieldFunc {
	return func(dec *json.Decoder, path string) error {
		s, err := decodeString(dec, path)
		if err != nil {
			return err
		}
		*dst = &s
		return nil
	}
}

func innerField(dst **innerWire) fieldFunc {
	return func(dec *json.Decoder, path string) error {
		w := &innerWire{}
		if err := decodeObject(dec, path, w.fields()); err != nil {
			return err
		}
		*dst = w
		return nil
	}
}

func mapField(dst *map[string]string) fieldFunc {
	return func(dec *json.Decoder, path string) error {
		m, err := decodeStringMap(dec, path)
		if err != nil {
			return err
		}
		*dst = m
		return nil
	}
}

// decode walks a single JSON object in text, handing known keys to fields.
func decode(text string, fields map[string]fieldFunc) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("invalid UTF-8 in input")
	}

	dec := json.NewDecoder(strings.NewReader(text))
	if err := decodeObject(dec, "", fields); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return err
		}
		return fmt.Errorf("trailing characters after object")
	}
	return nil
}

// decodeObject reads an object from dec. Keys are matched exactly; unknown keys
// are skipped and a repeated known key is rejected.
func decodeObject(dec *json.Decoder, path string, fields map[string]fieldFunc) error {
	tok, err := nextToken(dec)
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return typeError(path, "an object")
	}

	prefix := ""
	if path != "" {
		prefix = path + "."
	}
	seen := make(map[string]bool, len(fields))
	for dec.More() {
		tok, err := nextToken(dec)
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		decodeField, known := fields[key]
		if !known {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return unexpectedEOF(err)
			}
			continue
		}
		if seen[key] {
			return fmt.Errorf("duplicate field %q", prefix+key)
		}
		seen[key] = true
		if err := decodeField(dec, prefix+key); err != nil {
			return err
		}
	}

	_, err = nextToken(dec)
	return err
}

func decodeString(dec *json.Decoder, path string) (string, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", typeError(path, "a string")
	}
	return s, nil
}

// decodeStringMap reads an object of string values. A repeated key keeps the
// last value.
func decodeStringMap(dec *json.Decoder, path string) (map[string]string, error) {
	tok, err := nextToken(dec)
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, typeError(path, "a map")
	}

	m := make(map[string]string)
	for dec.More() {
		tok, err := nextToken(dec)
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		v, err := decodeString(dec, path+"."+key)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}

	if _, err := nextToken(dec); err != nil {
		return nil, err
	}
	return m, nil
}

func nextToken(dec *json.Decoder) (json.Token, error) {
	tok, err := dec.Token()
	return tok, unexpectedEOF(err)
}

// unexpectedEOF reports running out of input mid-value.
func unexpectedEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("unexpected end of JSON input")
	}
	return err
}

func typeError(path, want string) error {
	if path == "" {
		return fmt.Errorf("invalid type: expected %s", want)
	}
	return fmt.Errorf("invalid type for field %q: expected %s", path, want)
}
