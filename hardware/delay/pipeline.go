// This file is part of Cyclestep.
//
// Cyclestep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cyclestep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cyclestep.  If not, see <https://www.gnu.org/licenses/>.

package delay

import (
	"fmt"
	"strings"
	"unsafe"
)

// Value is the set of types that can be stored in a Pipeline.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32
}

// Pipeline is a fixed depth queue of values of type T. Slot zero is the
// oldest value and slot depth-1 is the newest.
type Pipeline[T Value] struct {
	depth int

	// number of bits used by each value and the number of values in each
	// storage word
	width   uint
	perWord int
	mask    uint64

	words []uint64
}

// NewPipeline is the preferred method of initialisation for the Pipeline type.
// The depth must be at least one.
func NewPipeline[T Value](depth int) *Pipeline[T] {
	if depth < 1 {
		panic(fmt.Sprintf("delay: pipeline depth must be at least one (%d)", depth))
	}

	var z T
	width := uint(unsafe.Sizeof(z)) * 8
	perWord := 64 / int(width)

	return &Pipeline[T]{
		depth:   depth,
		width:   width,
		perWord: perWord,
		mask:    (uint64(1) << width) - 1,
		words:   make([]uint64, (depth+perWord-1)/perWord),
	}
}

// Depth returns the number of values in the pipeline.
func (p *Pipeline[T]) Depth() int {
	return p.depth
}

func (p *Pipeline[T]) slot(i int) (int, uint) {
	return i / p.perWord, uint(i%p.perWord) * p.width
}

// Value returns the oldest value in the pipeline.
func (p *Pipeline[T]) Value() T {
	return T(p.words[0] & p.mask)
}

// Peek returns the value in slot i. Slot zero is the same as Value().
func (p *Pipeline[T]) Peek(i int) T {
	w, s := p.slot(i)
	return T((p.words[w] >> s) & p.mask)
}

// Insert writes the value into the newest slot. No other slot is changed.
func (p *Pipeline[T]) Insert(v T) {
	w, s := p.slot(p.depth - 1)
	p.words[w] &^= p.mask << s
	p.words[w] |= (uint64(v) & p.mask) << s
}

// Advance moves every value one slot towards the oldest end. The oldest value
// is discarded and the newest slot is zero until the next call to Insert().
func (p *Pipeline[T]) Advance() {
	top := uint(p.perWord-1) * p.width
	for i := range p.words {
		p.words[i] >>= p.width
		if i+1 < len(p.words) {
			p.words[i] |= (p.words[i+1] & p.mask) << top
		}
	}

	// newest slot is vacant
	w, s := p.slot(p.depth - 1)
	p.words[w] &^= p.mask << s
}

// Reset sets every slot to zero.
func (p *Pipeline[T]) Reset() {
	clear(p.words)
}

func (p *Pipeline[T]) String() string {
	s := strings.Builder{}
	for i := p.depth - 1; i >= 0; i-- {
		s.WriteString(fmt.Sprintf("%v", p.Peek(i)))
		if i > 0 {
			s.WriteString(" > ")
		}
	}
	return s.String()
}
