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
	"fmt"
)

// Record is one decoded record: a value for every field slot of its
// schema, together with the handles every record kind shares.
//
// A record belongs to at most one [Chain] at a time.  While it is
// linked, only the chain may release it.
type Record struct {
	// Handle is the record's identification handle (group code 5, or
	// 105 for record kinds which use that code).  Zero means the
	// record has no handle.
	Handle Handle

	// Owner is the soft owner handle (group code 330), usually the
	// owning dictionary or block record.
	Owner Handle

	// HardOwner is the hard owner handle (group code 360).
	HardOwner Handle

	// group code Handle was decoded from, 0 for code 5
	handleCode int

	schema *Schema

	single []Value   // indexed by slot, nil entry for repeated slots
	lists  [][]Value // indexed by slot, nil entry for single slots

	next     *Record
	linked   bool
	released bool
}

// NewRecord creates an empty record for the given kind, with every
// single-valued field set to its schema default and every repeated
// field set to the empty list.
func NewRecord(schema *Schema) *Record {
	rec := &Record{
		schema: schema,
		single: make([]Value, len(schema.Slots)),
		lists:  make([][]Value, len(schema.Slots)),
	}
	for i := range schema.Slots {
		if !schema.Slots[i].Repeated {
			rec.single[i] = schema.Slots[i].Default
		}
	}
	return rec
}

// Kind returns the record kind name, e.g. "LINE".
func (rec *Record) Kind() string {
	return rec.schema.Kind
}

// Schema returns the schema the record was created from.
func (rec *Record) Schema() *Schema {
	return rec.schema
}

// Value returns the value of the single-valued field with slot index i.
// Tuple fields return a [Point].
func (rec *Record) Value(i int) Value {
	return rec.single[i]
}

// SetValue sets the single-valued field with slot index i.  The value
// must match the slot's type, and the slot must not be repeated.
func (rec *Record) SetValue(i int, v Value) {
	slot := &rec.schema.Slots[i]
	if slot.Repeated {
		panic(fmt.Sprintf("%s.%s: SetValue on repeated field",
			rec.schema.Kind, slot.Name))
	}
	if !rec.schema.isTuple(i) {
		if !typeMatches(v, slot.Type) {
			panic(fmt.Sprintf("%s.%s: value %v does not match type %s",
				rec.schema.Kind, slot.Name, v, slot.Type))
		}
	} else if _, ok := v.(Point); !ok {
		panic(fmt.Sprintf("%s.%s: tuple field requires a Point",
			rec.schema.Kind, slot.Name))
	}
	rec.single[i] = v
}

// List returns the accumulated values of the repeated field with slot
// index i, in the order in which they were appended.  The result must
// not be modified.
func (rec *Record) List(i int) []Value {
	return rec.lists[i]
}

// SetList replaces the values of the repeated field with slot index i.
// A nil list clears the field.
func (rec *Record) SetList(i int, values []Value) {
	slot := &rec.schema.Slots[i]
	if !slot.Repeated {
		panic(fmt.Sprintf("%s.%s: SetList on single-valued field",
			rec.schema.Kind, slot.Name))
	}
	rec.lists[i] = nil
	for _, v := range values {
		rec.Append(i, v)
	}
}

// Append appends a value to the repeated field with slot index i.
func (rec *Record) Append(i int, v Value) {
	slot := &rec.schema.Slots[i]
	if !slot.Repeated {
		panic(fmt.Sprintf("%s.%s: Append on single-valued field",
			rec.schema.Kind, slot.Name))
	}
	if rec.schema.isTuple(i) {
		if _, ok := v.(Point); !ok {
			panic(fmt.Sprintf("%s.%s: tuple field requires a Point",
				rec.schema.Kind, slot.Name))
		}
	} else if !typeMatches(v, slot.Type) {
		panic(fmt.Sprintf("%s.%s: value %v does not match type %s",
			rec.schema.Kind, slot.Name, v, slot.Type))
	}
	rec.lists[i] = append(rec.lists[i], v)
}

// Equal reports whether two records have the same kind, handles, and
// field values.  Chain membership is ignored.
func (rec *Record) Equal(other *Record) bool {
	if rec == nil || other == nil {
		return rec == other
	}
	if rec.schema != other.schema ||
		rec.Handle != other.Handle ||
		rec.Owner != other.Owner ||
		rec.HardOwner != other.HardOwner {
		return false
	}
	for i := range rec.schema.Slots {
		if rec.schema.Slots[i].Repeated {
			a, b := rec.lists[i], other.lists[i]
			if len(a) != len(b) {
				return false
			}
			for k := range a {
				if a[k] != b[k] {
					return false
				}
			}
		} else if rec.single[i] != other.single[i] {
			return false
		}
	}
	return true
}

// Next returns the successor of rec in its chain, or nil if rec is
// terminal or not linked.
func (rec *Record) Next() *Record {
	return rec.next
}

// Release disposes of a record which is not linked into a chain.  The
// record's field storage is dropped; using the record afterwards is an
// error.
//
// A record whose chain link is still set cannot be released; Release
// then reports [ErrChainNotTerminated] and the record is left intact.
// This mirrors the requirement that the link must be cleared before a
// record is disposed of individually.
func (rec *Record) Release() error {
	if rec.next != nil || rec.linked {
		return ErrChainNotTerminated
	}
	if rec.released {
		return Error("record released twice")
	}
	rec.released = true
	rec.single = nil
	rec.lists = nil
	return nil
}
