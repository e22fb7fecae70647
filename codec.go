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
	"io"
)

// Group codes the engine handles for every record kind, independent of
// the schema.  A schema may claim any of these codes for itself, in
// which case the schema takes precedence.
const (
	codeHandle    = 5
	codeHandleAlt = 105
	codeSoftOwner = 330
	codeHardOwner = 360
)

// DecodeRecord reads one record from r.
//
// The next tag on the stream must be a boundary tag naming the
// schema's record kind.  Tags are then consumed until the next boundary
// tag, which is pushed back for the caller, or until the end of the
// stream.  Unknown group codes, codes outside the context's version
// range, and values which fail to parse are reported through ctx.Warn
// and skipped; the affected field keeps its previous value.  Only I/O
// failures abort the record.
//
// At the end of the stream, before any tag of a new record has been
// read, DecodeRecord returns io.EOF.
func DecodeRecord(schema *Schema, r *TagReader, ctx *Context) (*Record, error) {
	tag, err := r.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag.Code != CodeBoundary || tag.Value != schema.Kind {
		r.Unread()
		return nil, &MalformedFileError{
			Line: r.Line(),
			Err:  fmt.Errorf("expected record %q but found tag (%d, %q)", schema.Kind, tag.Code, tag.Value),
		}
	}

	rec := NewRecord(schema)

	// Partially accumulated coordinate tuples of repeated fields,
	// keyed by slot index.  A tuple is appended to its list when its
	// last component code arrives.
	var pending map[int]Point

	for {
		tag, err := r.ReadTag()
		if err == io.EOF {
			break
		}
		var malformed *MalformedFileError
		if errors.As(err, &malformed) {
			ctx.warn(err)
			continue
		}
		if err != nil {
			return nil, err
		}
		if tag.Code == CodeBoundary {
			r.Unread()
			break
		}

		ref, ok := schema.lookup(tag.Code)
		if !ok {
			if decodeCommon(rec, tag, r, ctx) {
				continue
			}
			ctx.warn(&MalformedFileError{
				Line: r.Line(),
				Err:  fmt.Errorf("%s: unknown group code %d", schema.Kind, tag.Code),
			})
			continue
		}

		slot := &schema.Slots[ref.slot]
		if !ctx.Supports(slot.Min, slot.Max) {
			ctx.warn(&MalformedFileError{
				Line: r.Line(),
				Err: fmt.Errorf("%s.%s: group code %d not valid in %s",
					schema.Kind, slot.Name, tag.Code, ctx.Version),
			})
			continue
		}

		val, err := DecodeValue(tag.Value, slot.Type)
		if err != nil {
			if m, ok := err.(*MalformedFileError); ok && m.Line == 0 {
				m.Line = r.Line()
			}
			ctx.warn(err)
			continue
		}
		switch {
		case !schema.isTuple(ref.slot):
			if slot.Repeated {
				rec.lists[ref.slot] = append(rec.lists[ref.slot], val)
			} else {
				// Later occurrences of the same code override
				// earlier ones.
				rec.single[ref.slot] = val
			}

		case !slot.Repeated:
			p := rec.single[ref.slot].(Point)
			p[ref.comp] = float64(val.(Real))
			rec.single[ref.slot] = p

		default:
			if pending == nil {
				pending = make(map[int]Point)
			}
			p := pending[ref.slot]
			p[ref.comp] = float64(val.(Real))
			if ref.comp == len(slot.Tuple) {
				rec.lists[ref.slot] = append(rec.lists[ref.slot], p)
				delete(pending, ref.slot)
			} else {
				pending[ref.slot] = p
			}
		}
	}

	// A writer that stops mid-tuple still produced a vertex; complete
	// it with zero components rather than dropping it.
	for i, p := range pending {
		ctx.warn(&MalformedFileError{
			Line: r.Line(),
			Err: fmt.Errorf("%s.%s: incomplete coordinate tuple",
				schema.Kind, schema.Slots[i].Name),
		})
		rec.lists[i] = append(rec.lists[i], p)
	}

	repairRecord(rec)

	return rec, nil
}

// decodeCommon handles the group codes every record kind carries.
// It reports whether the tag was consumed.
func decodeCommon(rec *Record, tag Tag, r *TagReader, ctx *Context) bool {
	var dst *Handle
	switch tag.Code {
	case codeHandle, codeHandleAlt:
		dst = &rec.Handle
		rec.handleCode = tag.Code
	case codeSoftOwner:
		dst = &rec.Owner
	case codeHardOwner:
		dst = &rec.HardOwner
	default:
		return false
	}

	val, err := DecodeValue(tag.Value, TypeHandle)
	if err != nil {
		if m, ok := err.(*MalformedFileError); ok && m.Line == 0 {
			m.Line = r.Line()
		}
		ctx.warn(err)
		return true
	}
	*dst = val.(Handle)
	return true
}

// repairRecord normalizes omitted members: a single-valued string field
// holding the empty string is reset to its schema default, so that e.g.
// an empty layer name comes out as the standard layer "0".
func repairRecord(rec *Record) {
	for i := range rec.schema.Slots {
		slot := &rec.schema.Slots[i]
		if slot.Repeated || slot.Type != TypeString {
			continue
		}
		if rec.single[i] == String("") && slot.Default != String("") {
			rec.single[i] = slot.Default
		}
	}
}

// EncodeRecord writes one record to w.
//
// Fields are written in schema order.  Fields outside the context's
// version range are skipped, as are fields equal to their schema
// default, unless marked Mandatory.  If the schema has a Check hook and
// the record fails it, no tags at all are written and the error is of
// type [*ValidationError].
//
// I/O failures abort the record immediately; the output may then end in
// a partial record, and the caller must not present it as a complete
// file.
func EncodeRecord(rec *Record, schema *Schema, w *TagWriter, ctx *Context) error {
	if rec.schema != schema {
		return Error("record kind " + rec.Kind() + " does not match schema " + schema.Kind)
	}
	if rec.released {
		return Error("cannot encode released record")
	}
	if schema.Check != nil {
		if err := schema.Check(rec); err != nil {
			return &ValidationError{Kind: schema.Kind, Err: err}
		}
	}

	err := w.WriteTag(Tag{Code: CodeBoundary, Value: schema.Kind})
	if err != nil {
		return err
	}
	if err := encodeCommon(rec, schema, w); err != nil {
		return err
	}

	for i := range schema.Slots {
		slot := &schema.Slots[i]
		if !ctx.Supports(slot.Min, slot.Max) {
			continue
		}

		if slot.Repeated {
			for _, val := range rec.lists[i] {
				if err := writeValue(w, schema, i, val, ctx); err != nil {
					return err
				}
			}
			continue
		}

		val := rec.single[i]
		if !slot.Mandatory && val == slot.Default {
			continue
		}
		if err := writeValue(w, schema, i, val, ctx); err != nil {
			return err
		}
	}

	return w.Flush()
}

// encodeCommon writes the handle groups shared by all record kinds.
// Codes claimed by the schema are left to the schema-driven loop.
func encodeCommon(rec *Record, schema *Schema, w *TagWriter) error {
	// the handle keeps the group code it was decoded from
	handleCode := codeHandle
	if rec.handleCode == codeHandleAlt {
		handleCode = codeHandleAlt
	}
	common := []struct {
		code int
		h    Handle
	}{
		{handleCode, rec.Handle},
		{codeSoftOwner, rec.Owner},
		{codeHardOwner, rec.HardOwner},
	}
	for _, c := range common {
		if c.h == 0 {
			continue
		}
		if _, claimed := schema.lookup(c.code); claimed {
			continue
		}
		err := w.WriteTag(Tag{Code: c.code, Value: c.h.String()})
		if err != nil {
			return err
		}
	}
	return nil
}

// writeValue emits the tag (or, for tuples, tags) of one value of slot i.
func writeValue(w *TagWriter, schema *Schema, i int, val Value, ctx *Context) error {
	if !schema.isTuple(i) {
		return w.WriteTag(Tag{Code: schema.Slots[i].Code, Value: val.String()})
	}

	p := val.(Point)
	for comp, code := range schema.tupleCodes(i) {
		if comp == 2 && ctx.Flatland {
			// In flatland mode points are two-dimensional and the
			// elevation groups carry the Z coordinate instead.
			break
		}
		err := w.WriteTag(Tag{Code: code, Value: Real(p[comp]).String()})
		if err != nil {
			return err
		}
	}
	return nil
}
