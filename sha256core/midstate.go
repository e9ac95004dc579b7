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
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Midstate is the unfinalized internal state of a SHA-256 hash after
// absorbing an integer number of 64-byte blocks.
//
// Midstate is obscure and specialized: it represents partially-hashed
// data but has none of the properties of a cryptographic hash. In
// particular, when (ab)used as a hash, a midstate is trivially
// vulnerable to length-extension. Its purpose is to let a caller
// precompute a fixed prefix once and resume hashing from it — the
// BIP-340 tagged-hash construction, whose first 64 bytes are always
// SHA256(tag) || SHA256(tag), is the canonical use case; see HashTag.
type Midstate struct {
	bytes       [Size]byte
	bytesHashed uint64
}

// NewMidstate constructs a Midstate from raw state bytes and the
// number of bytes hashed to reach that state.
//
// NewMidstate panics if bytesHashed is not a multiple of BlockSize:
// a midstate at a non-block boundary cannot exist, and constructing
// one is a programmer error rather than a runtime condition a caller
// can recover from.
func NewMidstate(state [Size]byte, bytesHashed uint64) Midstate {
	if bytesHashed%BlockSize != 0 {
		panic(fmt.Sprintf("sha256core: bytes hashed %d is not a multiple of %d", bytesHashed, BlockSize))
	}
	return Midstate{bytes: state, bytesHashed: bytesHashed}
}

// AsParts returns the midstate's raw bytes and the number of bytes
// hashed to reach it.
func (m Midstate) AsParts() ([Size]byte, uint64) { return m.bytes, m.bytesHashed }

// String renders the midstate for debugging, matching the upstream
// Rust implementation's Debug output shape.
func (m Midstate) String() string {
	return fmt.Sprintf("Midstate{bytes: %s, bytesHashed: %d}", hex.EncodeToString(m.bytes[:]), m.bytesHashed)
}

func (m Midstate) decodeState() [8]uint32 {
	var state [8]uint32
	for i := range state {
		state[i] = binary.BigEndian.Uint32(m.bytes[i*4:])
	}
	return state
}
