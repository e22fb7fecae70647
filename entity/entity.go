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

// Package entity provides the field tables for the common graphical
// entities of the ENTITIES section.
//
// Each table describes one record kind for the generic codec in package
// dxf.  A file-level driver reads a boundary tag, looks the kind up via
// [Lookup], and hands the schema to its session:
//
//	schema := entity.Lookup(name)
//	rec, err := session.DecodeNext(schema)
package entity

import (
	"seehuhn.de/go/dxf"
)

// byKind maps the record kind names of the ENTITIES section to their
// schemas.
var byKind = map[string]*dxf.Schema{
	"LINE":       Line,
	"POINT":      Point,
	"CIRCLE":     Circle,
	"ARC":        Arc,
	"TEXT":       Text,
	"SOLID":      Solid,
	"POLYLINE":   Polyline,
	"VERTEX":     Vertex,
	"SEQEND":     SeqEnd,
	"LWPOLYLINE": LWPolyline,
}

// Lookup returns the schema for the named record kind, or nil if the
// kind is not covered by this package.
func Lookup(kind string) *dxf.Schema {
	return byKind[kind]
}

// common returns the field slots shared by all graphical entities.
// Every schema in this package starts with these, so that the slot
// indices of the shared fields agree across kinds.
func common() []dxf.FieldSlot {
	return []dxf.FieldSlot{
		{Name: "Layer", Code: 8, Type: dxf.TypeString,
			Default: dxf.String("0"), Mandatory: true},
		{Name: "Linetype", Code: 6, Type: dxf.TypeString,
			Default: dxf.String("BYLAYER")},
		{Name: "Color", Code: 62, Type: dxf.TypeShort,
			Default: dxf.Short(colorByLayer)},
		{Name: "LinetypeScale", Code: 48, Type: dxf.TypeReal,
			Default: dxf.Real(1), Min: dxf.R13},
		{Name: "TrueColor", Code: 420, Type: dxf.TypeInteger,
			Min: dxf.R2004},
	}
}

// colorByLayer is the color number meaning "inherit from the layer".
const colorByLayer = 256

// must panics if a schema table is inconsistent.  The tables in this
// package are static, so this can only fire during development.
func must(s *dxf.Schema, err error) *dxf.Schema {
	if err != nil {
		panic(err)
	}
	return s
}
