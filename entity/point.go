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
	"seehuhn.de/go/dxf"
)

// Point is the field table for POINT entities.
var Point = must(dxf.NewSchema("POINT", append(common(),
	dxf.FieldSlot{Name: "Position", Code: 10, Tuple: []int{20, 30},
		Type: dxf.TypeReal, Mandatory: true},
	dxf.FieldSlot{Name: "Thickness", Code: 39, Type: dxf.TypeReal},
	dxf.FieldSlot{Name: "Extrusion", Code: 210, Tuple: []int{220, 230},
		Type: dxf.TypeReal, Default: dxf.Point{0, 0, 1}},
	// rotation of the X axis used when PDMODE draws a symbol
	dxf.FieldSlot{Name: "Angle", Code: 50, Type: dxf.TypeReal},
), nil))
