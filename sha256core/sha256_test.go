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
	cryptosha256 "crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return b
}

func TestHashVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"quick-fox", "The quick brown fox jumps over the lazy dog", "d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592"},
		{"quick-fox-dot", "The quick brown fox jumps over the lazy dog.", "ef537f25c895bfa782526529a9b63d97aa631564d5d789c2b765448c8635fb6c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mustHex(t, tt.want)
			got := Hash([]byte(tt.input))
			if !bytes.Equal(got[:], want) {
				t.Fatalf("Hash(%q) = %x, want %x", tt.input, got, want)
			}
		})
	}
}

func TestHashMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long vector in -short mode")
	}
	e := New()
	chunk := bytes.Repeat([]byte{'a'}, 1000)
	for i := 0; i < 1000; i++ {
		e.Write(chunk)
	}
	got := e.Sum()
	want := mustHex(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Hash(1e6 'a') = %x, want %x", got, want)
	}
}

func TestHashMatchesStdlibRandomized(t *testing.T) {
	for n := 0; n <= 300; n++ {
		data := bytes.Repeat([]byte{0x5a}, n)
		for i := range data {
			data[i] = byte(i*7 + n)
		}
		got := Hash(data)
		want := cryptosha256.Sum256(data)
		if got != want {
			t.Fatalf("len %d: Hash = %x, want %x (crypto/sha256)", n, got, want)
		}
	}
}

func TestChunkInvariance(t *testing.T) {
	msg := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 20))
	whole := Hash(msg)

	splits := [][]int{
		{},
		{1},
		{63, 64, 65},
		{0, 1, 2, 3, 64, 128, 129},
		{17, 200, 201, 500},
	}

	for _, cuts := range splits {
		e := New()
		prev := 0
		for _, cut := range cuts {
			if cut > len(msg) {
				continue
			}
			e.Write(msg[prev:cut])
			prev = cut
		}
		e.Write(msg[prev:])
		got := e.Sum()
		if got != whole {
			t.Fatalf("chunked write with cuts %v = %x, want %x", cuts, got, whole)
		}
	}

	// Byte-at-a-time is the most aggressive partition.
	e := New()
	for _, b := range msg {
		e.Write([]byte{b})
	}
	if got := e.Sum(); got != whole {
		t.Fatalf("byte-at-a-time write = %x, want %x", got, whole)
	}
}

func TestPathEquivalenceHashVsUnoptimized(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for n := 0; n <= 256; n++ {
		got := Hash(data[:n])
		want := HashUnoptimized(data[:n])
		if got != want {
			t.Fatalf("len %d: Hash = %x, HashUnoptimized = %x", n, got, want)
		}
	}
}

func TestCompressGenericMatchesScalarRoundTrip(t *testing.T) {
	// A compression primitive must be a pure function: calling it
	// twice on the same inputs must yield the same output.
	var block [BlockSize]byte
	for i := range block {
		block[i] = byte(i * 3)
	}
	a := CompressGeneric(iv, &block)
	b := CompressGeneric(iv, &block)
	if a != b {
		t.Fatalf("CompressGeneric is not pure: %v != %v", a, b)
	}
}
