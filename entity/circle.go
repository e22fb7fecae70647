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

// Circle is the field table for CIRCLE entities.
var Circle = must(dxf.NewSchema("CIRCLE", append(common(),
	dxf.FieldSlot{Name: "Thickness", Code: 39, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Center", Code: 10, Tuple: []int{20, 30},
		Type: dxf.TypeReal, Mandatory: true},
	dxf.FieldSlot{Name: "Radius", Code: 40, Type: dxf.TypeReal,
		Mandatory: true},
	dxf.FieldSlot{Name: "Extrusion", Code: 210, Tuple: []int{220, 230},
		Type: dxf.TypeReal, Default: dxf.Point{0, 0, 1}},
), checkCircle))

func checkCircle(rec *dxf.Record) error {
	r := rec.Value(rec.Schema().SlotIndex("Radius")).(dxf.Real)
	if r <= 0 {
		return errors.New("radius must be positive")
	}
	return nil
}
