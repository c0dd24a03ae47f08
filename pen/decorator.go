// seehuhn.de/go/sketch - stylised outline rendering
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

package pen

import "seehuhn.de/go/sketch"

// Decorator forwards all calls to the wrapped pen.
//
// Pens which modify the behaviour of another pen embed a Decorator and
// override the methods they change.  Overriding methods must pass the
// placement index on unchanged, so that randomised pens keep drawing the
// same units.
type Decorator struct {
	sketch.Pen
}
