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

package delay_test

import (
	"testing"

	"github.com/TomHarte/CLK-sub007/hardware/delay"
	"github.com/TomHarte/CLK-sub007/test"
)

func TestEvent(t *testing.T) {
	var e delay.Event

	// an event that has not been scheduled is not active
	test.ExpectFailure(t, e.IsActive())
	test.ExpectEquality(t, e.Remaining(), -1)
	_, ok := e.Tick()
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, e.Restart())

	e.Schedule(2, 0x10)
	test.ExpectEquality(t, e.Remaining(), 2)

	_, ok = e.Tick()
	test.ExpectFailure(t, ok)
	_, ok = e.Tick()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, e.Remaining(), 0)
	v, ok := e.Tick()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x10))
	test.ExpectFailure(t, e.IsActive())

	// delivered values are not delivered again
	_, ok = e.Tick()
	test.ExpectFailure(t, ok)
}

func TestEventRestart(t *testing.T) {
	var e delay.Event

	// restarting an active event
	e.Schedule(1, 0x30)
	e.Tick()
	test.ExpectEquality(t, e.Remaining(), 0)
	test.ExpectSuccess(t, e.Restart())
	test.ExpectEquality(t, e.Remaining(), 1)
	_, ok := e.Tick()
	test.ExpectFailure(t, ok)
	v, ok := e.Tick()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint8(0x30))

	// restarting a delivered event
	test.ExpectSuccess(t, e.Restart())
	test.ExpectSuccess(t, e.IsActive())
	test.ExpectEquality(t, e.Remaining(), 1)

	// restarting a dropped event
	e.Drop()
	test.ExpectFailure(t, e.IsActive())
	test.ExpectSuccess(t, e.Restart())
	test.ExpectSuccess(t, e.IsActive())
}

func TestEventForce(t *testing.T) {
	var e delay.Event

	_, active := e.Force()
	test.ExpectFailure(t, active)

	e.Schedule(5, 0x40)
	e.Tick()
	v, active := e.Force()
	test.ExpectSuccess(t, active)
	test.ExpectEquality(t, v, uint8(0x40))
	test.ExpectFailure(t, e.IsActive())

	// a forced event is not delivered by Tick()
	for range 10 {
		_, ok := e.Tick()
		test.ExpectFailure(t, ok)
	}

	_, active = e.Force()
	test.ExpectFailure(t, active)
}

func TestPipelineDepthTwo(t *testing.T) {
	p := delay.NewPipeline[uint8](2)
	p.Insert(0xaa)
	p.Advance()
	p.Insert(0xbb)
	test.ExpectEquality(t, p.Value(), uint8(0xaa))
	test.ExpectEquality(t, p.Value(), uint8(0xaa))
	p.Advance()
	test.ExpectEquality(t, p.Value(), uint8(0xbb))
	p.Advance()
	test.ExpectEquality(t, p.Value(), uint8(0x00))
}

func TestPipelineInsert(t *testing.T) {
	p := delay.NewPipeline[uint16](3)
	p.Insert(1)
	p.Advance()
	p.Insert(2)
	p.Advance()
	p.Insert(3)
	test.ExpectEquality(t, p.String(), "3 > 2 > 1")

	// insert replaces the newest value only
	p.Insert(4)
	test.ExpectEquality(t, p.String(), "4 > 2 > 1")
	test.ExpectEquality(t, p.Value(), uint16(1))

	p.Reset()
	test.ExpectEquality(t, p.String(), "0 > 0 > 0")
}

// a depth that spans several storage words
func TestPipelineMultiWord(t *testing.T) {
	const depth = 11

	p := delay.NewPipeline[uint32](depth)
	test.ExpectEquality(t, p.Depth(), depth)

	for i := range 100 {
		p.Insert(uint32(0x80000000 + i))
		if i >= depth-1 {
			test.ExpectEquality(t, p.Value(), uint32(0x80000000+i-(depth-1)), i)
		}
		p.Advance()
	}
}

func TestPipelineSigned(t *testing.T) {
	p := delay.NewPipeline[int8](9)
	for i := range 9 {
		p.Insert(int8(-i))
		if i < 8 {
			p.Advance()
		}
	}
	for i := range 9 {
		test.ExpectEquality(t, p.Peek(i), int8(-i))
	}
	test.ExpectEquality(t, p.Value(), int8(0))
	p.Advance()
	test.ExpectEquality(t, p.Value(), int8(-1))
}

func TestPipelineInvalidDepth(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	delay.NewPipeline[uint8](0)
}
