// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dxf

import (
	"errors"
	"fmt"
	"slices"
)

// FieldSlot describes one field of a record kind: the group code (or
// codes) it is stored under, its type, its default, and the version
// range in which it is valid.
type FieldSlot struct {
	// Name identifies the field, e.g. in diagnostics and in the
	// [Record.Value] accessors.
	Name string

	// Code is the group code of the field.  For tuple fields this is
	// the code of the first component.
	Code int

	// Tuple lists the group codes of the remaining components of a
	// coordinate tuple, in component order.  A tuple field materializes
	// as a [Point]; the tuple is complete when its last code has been
	// seen.  Tuple fields must have type [TypeReal].
	Tuple []int

	// Type is the wire type of the field's values.
	Type ValueType

	// Default is the value a decoded record starts out with, and the
	// value suppressed on output unless the field is Mandatory.  A nil
	// Default stands for the zero value of the field's type.  Repeated
	// fields have no default; they start as an empty list.
	Default Value

	// Min and Max delimit the inclusive range of format versions in
	// which the field exists.  A zero value leaves the corresponding
	// end of the range open.  Out-of-range fields are skipped on
	// output and ignored on input.
	Min, Max Version

	// Repeated marks a field which may occur any number of times;
	// occurrences accumulate in order.  Non-repeated fields are
	// last-write-wins.
	Repeated bool

	// Mandatory marks a field which is always written, even when its
	// value equals the default.
	Mandatory bool
}

// Schema is the static field table of one record kind.  A Schema is
// immutable after construction and may be shared freely, including
// between goroutines.
type Schema struct {
	// Kind is the record kind name used in boundary tags, e.g. "LINE".
	Kind string

	// Slots lists the fields in the order in which they are written.
	Slots []FieldSlot

	// Check, if non-nil, is run before a record is encoded.  If it
	// returns an error, no tags are written for the record.
	Check func(*Record) error

	byCode map[int]slotRef
	byName map[string]int
}

// slotRef locates one group code within a schema: the slot it belongs
// to and, for tuple fields, which component it sets.
type slotRef struct {
	slot, comp int
}

// NewSchema builds the schema for one record kind.  The slot list is
// validated: group codes must be in range and unique across the schema,
// defaults must match their field's type, and tuple fields must be
// real-valued.
func NewSchema(kind string, slots []FieldSlot, check func(*Record) error) (*Schema, error) {
	if kind == "" {
		return nil, errors.New("empty record kind")
	}

	// The slot list is normalized in place below; work on a copy so
	// that the caller's slice is left untouched.
	s := &Schema{
		Kind:   kind,
		Slots:  slices.Clone(slots),
		Check:  check,
		byCode: make(map[int]slotRef),
		byName: make(map[string]int),
	}

	for i := range s.Slots {
		slot := &s.Slots[i]

		if slot.Name == "" {
			return nil, fmt.Errorf("%s: slot %d has no name", kind, i)
		}
		if _, ok := s.byName[slot.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate field name %q", kind, slot.Name)
		}
		s.byName[slot.Name] = i

		if len(slot.Tuple) > 0 {
			if slot.Type != TypeReal {
				return nil, fmt.Errorf("%s.%s: tuple fields must be real-valued",
					kind, slot.Name)
			}
			if len(slot.Tuple) > 2 {
				return nil, fmt.Errorf("%s.%s: tuples have at most 3 components",
					kind, slot.Name)
			}
			if slot.Default == nil {
				slot.Default = Point{}
			} else if _, ok := slot.Default.(Point); !ok {
				return nil, fmt.Errorf("%s.%s: default must be a Point",
					kind, slot.Name)
			}
		} else {
			if slot.Default == nil {
				slot.Default = zeroValue(slot.Type)
			} else if !typeMatches(slot.Default, slot.Type) {
				return nil, fmt.Errorf("%s.%s: default %v does not match type %s",
					kind, slot.Name, slot.Default, slot.Type)
			}
		}

		codes := append([]int{slot.Code}, slot.Tuple...)
		for comp, code := range codes {
			if code == CodeBoundary || code == CodeComment || !codeValid(code) {
				return nil, fmt.Errorf("%s.%s: invalid group code %d",
					kind, slot.Name, code)
			}
			if _, ok := s.byCode[code]; ok {
				return nil, fmt.Errorf("%s: group code %d claimed twice",
					kind, code)
			}
			s.byCode[code] = slotRef{slot: i, comp: comp}
		}
	}

	return s, nil
}

// MustSchema is like [NewSchema] but panics on error.  It simplifies
// the declaration of package-level schema tables.
func MustSchema(kind string, slots []FieldSlot, check func(*Record) error) *Schema {
	s, err := NewSchema(kind, slots, check)
	if err != nil {
		panic(err)
	}
	return s
}

// SlotIndex returns the index of the named field, or -1 if the schema
// has no field of that name.
func (s *Schema) SlotIndex(name string) int {
	i, ok := s.byName[name]
	if !ok {
		return -1
	}
	return i
}

// lookup resolves a group code to a slot and component index.
func (s *Schema) lookup(code int) (slotRef, bool) {
	ref, ok := s.byCode[code]
	return ref, ok
}

// isTuple reports whether slot i materializes as a [Point].
func (s *Schema) isTuple(i int) bool {
	return len(s.Slots[i].Tuple) > 0
}

// tupleCodes returns all group codes of slot i in component order.
func (s *Schema) tupleCodes(i int) []int {
	slot := &s.Slots[i]
	return append([]int{slot.Code}, slot.Tuple...)
}
