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

package entity

import (
	"errors"

	"seehuhn.de/go/dxf"
)

// Text is the field table for single-line TEXT entities.
var Text = must(dxf.NewSchema("TEXT", append(common(),
	dxf.FieldSlot{Name: "Insertion", Code: 10, Tuple: []int{20, 30},
		Type: dxf.TypeReal, Mandatory: true},
	dxf.FieldSlot{Name: "Height", Code: 40, Type: dxf.TypeReal,
		Mandatory: true},
	dxf.FieldSlot{Name: "Value", Code: 1, Type: dxf.TypeString,
		Mandatory: true},
	dxf.FieldSlot{Name: "Rotation", Code: 50, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "WidthFactor", Code: 41, Type: dxf.TypeReal,
		Default: dxf.Real(1)},
	dxf.FieldSlot{Name: "Oblique", Code: 51, Type: dxf.TypeReal},
	// The empty style name normalizes to STANDARD on decode.
	dxf.FieldSlot{Name: "Style", Code: 7, Type: dxf.TypeString,
		Default: dxf.String("STANDARD")},
	dxf.FieldSlot{Name: "Generation", Code: 71, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "HAlign", Code: 72, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "VAlign", Code: 73, Type: dxf.TypeShort},
	dxf.FieldSlot{Name: "Alignment", Code: 11, Tuple: []int{21, 31},
		Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Extrusion", Code: 210, Tuple: []int{220, 230},
		Type: dxf.TypeReal, Default: dxf.Point{0, 0, 1}},
), checkText))

func checkText(rec *dxf.Record) error {
	h := rec.Value(rec.Schema().SlotIndex("Height")).(dxf.Real)
	if h <= 0 {
		return errors.New("text height must be positive")
	}
	return nil
}
