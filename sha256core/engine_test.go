// This file is part of rust-bitcoin.
//
// rust-bitcoin is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rust-bitcoin is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with rust-bitcoin. If not, see <http://www.gnu.org/licenses/>.

package sha256core

import (
	"bytes"
	"errors"
	"testing"
)

func TestMidstateRoundTrip(t *testing.T) {
	prefix := bytes.Repeat([]byte{0x11, 0x22, 0x33}, 100)[:192] // 3 blocks
	tails := [][]byte{
		{},
		{0x01},
		bytes.Repeat([]byte{0xff}, 63),
		bytes.Repeat([]byte{0xab}, 64),
		bytes.Repeat([]byte{0xcd}, 1000),
	}

	for _, tail := range tails {
		e := New()
		e.Write(prefix)

		m, err := e.Midstate()
		if err != nil {
			t.Fatalf("Midstate() on block boundary: %v", err)
		}

		resumed := FromMidstate(m)
		resumed.Write(tail)
		got := resumed.Sum()

		clone := *e
		clone.Write(tail)
		want := clone.Sum()

		if got != want {
			t.Fatalf("midstate round-trip mismatch for tail len %d: %x != %x", len(tail), got, want)
		}
	}
}

func TestOutpointMidstateScenario(t *testing.T) {
	outpoint := mustHex(t, "9dd01b56b15645143ead158dec19f8cea90bd0a9b2f81d21ffa3a4c64481d41c")
	want := mustHex(t, "0bcfe0e54e6cc7d34f4f7c1df0b0f503f2f712912a0605b414ed337f7f032e03")

	e := New()
	e.Write(outpoint)
	e.Write(make([]byte, 32))

	m, err := e.Midstate()
	if err != nil {
		t.Fatalf("Midstate(): %v", err)
	}
	gotBytes, gotHashed := m.AsParts()
	if !bytes.Equal(gotBytes[:], want) {
		t.Fatalf("outpoint midstate = %x, want %x", gotBytes, want)
	}
	if gotHashed != 64 {
		t.Fatalf("outpoint bytesHashed = %d, want 64", gotHashed)
	}
}

func TestMidstateBoundaryScenario(t *testing.T) {
	e := New()
	e.Write(bytes.Repeat([]byte{0x42}, 63))

	if _, err := e.Midstate(); err == nil {
		t.Fatalf("Midstate() at 63 bytes: expected NotAtBlockBoundaryError, got nil")
	} else {
		var boundaryErr *NotAtBlockBoundaryError
		if !errors.As(err, &boundaryErr) {
			t.Fatalf("Midstate() at 63 bytes: expected *NotAtBlockBoundaryError, got %T", err)
		}
		if boundaryErr.BytesHashed != 63 {
			t.Fatalf("NotAtBlockBoundaryError.BytesHashed = %d, want 63", boundaryErr.BytesHashed)
		}
	}
	if e.CanExtractMidstate() {
		t.Fatalf("CanExtractMidstate() at 63 bytes: want false")
	}

	e.Write([]byte{0x99})

	if !e.CanExtractMidstate() {
		t.Fatalf("CanExtractMidstate() at 64 bytes: want true")
	}
	if _, err := e.Midstate(); err != nil {
		t.Fatalf("Midstate() at 64 bytes: %v", err)
	}
}

func TestNotAtBlockBoundaryErrorMessage(t *testing.T) {
	err := &NotAtBlockBoundaryError{BytesHashed: 100}
	if err.Error() == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestSumLeavesEngineReusable(t *testing.T) {
	e := New()
	e.Write([]byte("hello"))
	first := e.Sum()
	e.Write([]byte(" world"))
	second := e.Sum()

	want := Hash([]byte("hello world"))
	if second != want {
		t.Fatalf("Sum after further writes = %x, want %x", second, want)
	}
	if first == second {
		t.Fatalf("Sum did not change after additional writes")
	}
}
