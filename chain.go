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
	"iter"
)

// Chain is an ordered collection of records of one kind.  The chain
// owns its records exclusively: appending a record transfers ownership
// into the chain, and closing the chain releases every record exactly
// once, in append order.  A record cannot be released individually
// while it is still linked.
type Chain struct {
	head, tail *Record
	n          int
}

// Append transfers ownership of rec into the chain.  The record must
// not already belong to a chain and must not have been released.
func (c *Chain) Append(rec *Record) error {
	if rec == nil {
		return Error("cannot append nil record")
	}
	if rec.linked || rec.next != nil {
		return Error("record already belongs to a chain")
	}
	if rec.released {
		return Error("cannot append released record")
	}
	if c.head != nil && c.head.schema != rec.schema {
		return Error("record kind " + rec.Kind() +
			" does not match chain kind " + c.head.Kind())
	}

	rec.linked = true
	if c.tail == nil {
		c.head = rec
	} else {
		c.tail.next = rec
	}
	c.tail = rec
	c.n++
	return nil
}

// Len returns the number of records in the chain.
func (c *Chain) Len() int {
	return c.n
}

// All iterates over the records of the chain in append order.  The
// returned sequence can be restarted.  The chain must not be modified
// during iteration.
func (c *Chain) All() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for rec := c.head; rec != nil; rec = rec.next {
			if !yield(rec) {
				return
			}
		}
	}
}

// Close releases every record of the chain, in append order, and
// empties the chain.  Each record's chain link is cleared immediately
// before the record is released, so that no record is ever disposed of
// while it still points into the chain.
func (c *Chain) Close() error {
	rec := c.head
	c.head = nil
	c.tail = nil
	c.n = 0

	for rec != nil {
		next := rec.next
		rec.next = nil
		rec.linked = false
		err := rec.Release()
		if err != nil {
			return err
		}
		rec = next
	}
	return nil
}
