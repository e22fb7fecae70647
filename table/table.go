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

// Package table provides the field tables for the symbol-table records
// of the TABLES section: layers, linetypes, text styles and viewport
// configurations.
package table

import (
	"errors"

	"seehuhn.de/go/dxf"
)

var byKind = map[string]*dxf.Schema{
	"LAYER": Layer,
	"LTYPE": Linetype,
	"STYLE": Style,
	"VPORT": Viewport,
}

// Lookup returns the schema for the named record kind, or nil if the
// kind is not covered by this package.
func Lookup(kind string) *dxf.Schema {
	return byKind[kind]
}

// Layer is the field table for LAYER records.
var Layer = must(dxf.NewSchema("LAYER", []dxf.FieldSlot{
	{Name: "Name", Code: 2, Type: dxf.TypeString,
		Default: dxf.String("0"), Mandatory: true},
	{Name: "Flags", Code: 70, Type: dxf.TypeShort, Mandatory: true},
	// negative color numbers mark the layer as switched off
	{Name: "Color", Code: 62, Type: dxf.TypeShort,
		Default: dxf.Short(7), Mandatory: true},
	{Name: "Linetype", Code: 6, Type: dxf.TypeString,
		Default: dxf.String("CONTINUOUS"), Mandatory: true},
	{Name: "Plot", Code: 290, Type: dxf.TypeFlag,
		Default: dxf.Flag(true), Min: dxf.R2000},
	{Name: "Lineweight", Code: 370, Type: dxf.TypeShort,
		Default: dxf.Short(-3), Min: dxf.R2000},
	{Name: "PlotStyle", Code: 390, Type: dxf.TypeHandle,
		Min: dxf.R2000},
}, checkLayer))

func checkLayer(rec *dxf.Record) error {
	name := rec.Value(rec.Schema().SlotIndex("Name")).(dxf.String)
	if name == "" {
		return errors.New("layer name must not be empty")
	}
	return nil
}

// Linetype is the field table for LTYPE records.  The dash pattern
// accumulates in the repeated element length group; the total pattern
// length is kept separately, following the file format.
var Linetype = must(dxf.NewSchema("LTYPE", []dxf.FieldSlot{
	{Name: "Name", Code: 2, Type: dxf.TypeString, Mandatory: true},
	{Name: "Flags", Code: 70, Type: dxf.TypeShort, Mandatory: true},
	{Name: "Description", Code: 3, Type: dxf.TypeString, Mandatory: true},
	// alignment code, always 65 ("A")
	{Name: "Alignment", Code: 72, Type: dxf.TypeShort,
		Default: dxf.Short(65), Mandatory: true},
	{Name: "ElementCount", Code: 73, Type: dxf.TypeShort, Mandatory: true},
	{Name: "PatternLength", Code: 40, Type: dxf.TypeReal, Mandatory: true},
	{Name: "Elements", Code: 49, Type: dxf.TypeReal, Repeated: true},
}, nil))

// Style is the field table for STYLE records describing text styles.
var Style = must(dxf.NewSchema("STYLE", []dxf.FieldSlot{
	{Name: "Name", Code: 2, Type: dxf.TypeString,
		Default: dxf.String("STANDARD"), Mandatory: true},
	{Name: "Flags", Code: 70, Type: dxf.TypeShort, Mandatory: true},
	{Name: "Height", Code: 40, Type: dxf.TypeReal, Mandatory: true},
	{Name: "WidthFactor", Code: 41, Type: dxf.TypeReal,
		Default: dxf.Real(1), Mandatory: true},
	{Name: "Oblique", Code: 50, Type: dxf.TypeReal, Mandatory: true},
	{Name: "Generation", Code: 71, Type: dxf.TypeShort, Mandatory: true},
	{Name: "LastHeight", Code: 42, Type: dxf.TypeReal},
	{Name: "Font", Code: 3, Type: dxf.TypeString,
		Default: dxf.String("txt"), Mandatory: true},
	{Name: "BigFont", Code: 4, Type: dxf.TypeString, Mandatory: true},
}, nil))

// Viewport is the field table for VPORT records.  Viewport corners and
// centers are 2D points.
var Viewport = must(dxf.NewSchema("VPORT", []dxf.FieldSlot{
	{Name: "Name", Code: 2, Type: dxf.TypeString,
		Default: dxf.String("*ACTIVE"), Mandatory: true},
	{Name: "Flags", Code: 70, Type: dxf.TypeShort, Mandatory: true},
	{Name: "LowerLeft", Code: 10, Tuple: []int{20},
		Type: dxf.TypeReal, Mandatory: true},
	{Name: "UpperRight", Code: 11, Tuple: []int{21},
		Type: dxf.TypeReal, Default: dxf.Point{1, 1, 0}, Mandatory: true},
	{Name: "Center", Code: 12, Tuple: []int{22},
		Type: dxf.TypeReal, Mandatory: true},
	{Name: "SnapBase", Code: 13, Tuple: []int{23}, Type: dxf.TypeReal},
	{Name: "SnapSpacing", Code: 14, Tuple: []int{24},
		Type: dxf.TypeReal, Default: dxf.Point{10, 10, 0}},
	{Name: "GridSpacing", Code: 15, Tuple: []int{25},
		Type: dxf.TypeReal},
	{Name: "Height", Code: 40, Type: dxf.TypeReal, Mandatory: true},
	{Name: "AspectRatio", Code: 41, Type: dxf.TypeReal,
		Default: dxf.Real(1), Mandatory: true},
}, nil))

func must(s *dxf.Schema, err error) *dxf.Schema {
	if err != nil {
		panic(err)
	}
	return s
}
