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
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Files older than R2007 store text in the code page named by the
// $DWGCODEPAGE header variable; R2007 and newer files use UTF-8
// throughout and need no transcoding.
var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
}

func lookupCodePage(name string) (encoding.Encoding, error) {
	enc, ok := codePages[strings.ToUpper(name)]
	if !ok {
		return nil, Error("unsupported code page " + name)
	}
	return enc, nil
}

// CodePageReader wraps r so that text encoded in the named code page
// comes out as UTF-8.  The name is matched case-insensitively against
// the values used by the $DWGCODEPAGE header variable, e.g.
// "ANSI_1252".
func CodePageReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupCodePage(name)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// CodePageWriter wraps w so that UTF-8 text written to it is stored in
// the named code page.  Characters without a representation in the code
// page are replaced by the encoding's substitute character.
func CodePageWriter(w io.Writer, name string) (io.Writer, error) {
	enc, err := lookupCodePage(name)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}
