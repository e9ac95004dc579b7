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

// Hash is the ordinary, block-streaming entry point: it feeds data
// through a fresh Engine and returns the finalized digest.
func Hash(data []byte) [Size]byte {
	e := New()
	e.Write(data)
	return e.Sum()
}

// HashUnoptimized computes the SHA-256 digest of data using the
// branch-free, chunk-at-a-time algorithm ComputeMidstateUnoptimized
// implements, instead of the streaming Engine.
//
// It exists so that callers can seed package-level var declarations —
// Go has no general compile-time function evaluation, so "const
// context" here means "plain code run once at init time", the idiom
// this package and sha256consts use to precompute tag midstates (see
// the chainhash.precomputedTags pattern this is grounded on).
// HashUnoptimized is markedly slower than Hash and is not meant to be
// called from a hot path.
func HashUnoptimized(data []byte) [Size]byte {
	m := ComputeMidstateUnoptimized(data, true)
	return m.bytes
}

// ComputeMidstateUnoptimized ingests data in a single branch-free pass
// and returns the resulting Midstate. When finalize is true, the
// standard FIPS 180-4 padding is applied and the returned Midstate's
// bytesHashed equals len(data) (its "block count" is therefore purely
// informational in that case, since a finalized state is no longer a
// true block-aligned midstate). When finalize is false, no chunk that
// holds padding is processed, and the returned Midstate reflects
// exactly the whole 64-byte blocks of data — this is the mode HashTag
// uses to obtain a genuine, resumable midstate. Its bytesHashed is
// len(data) in both modes.
func ComputeMidstateUnoptimized(data []byte, finalize bool) Midstate {
	state := iv

	numChunks := (len(data) + 9 + BlockSize - 1) / BlockSize
	for chunk := 0; chunk < numChunks; chunk++ {
		if !finalize && (chunk+1)*BlockSize > len(data) {
			break
		}

		var w [16]uint32
		offset := chunk * BlockSize
		if offset+BlockSize <= len(data) {
			for i := 0; i < 16; i++ {
				w[i] = beUint32(data, offset+i*4)
			}
		} else {
			var buf [BlockSize]byte
			var n int
			if offset < len(data) {
				n = copy(buf[:], data[offset:])
			}
			if len(data)%BlockSize <= BlockSize-9 || chunk+2 == numChunks {
				buf[n] = 0x80
			}
			if chunk+1 == numChunks {
				bitLen := uint64(len(data)) * 8
				for i := 0; i < 8; i++ {
					buf[BlockSize-8+i] = byte(bitLen >> (8 * (7 - i)))
				}
			}
			for i := 0; i < 16; i++ {
				w[i] = beUint32(buf[:], i*4)
			}
		}

		var block [BlockSize]byte
		for i, v := range w {
			block[i*4] = byte(v >> 24)
			block[i*4+1] = byte(v >> 16)
			block[i*4+2] = byte(v >> 8)
			block[i*4+3] = byte(v)
		}
		state = CompressGeneric(state, &block)
	}

	return Midstate{bytes: encodeState(state), bytesHashed: uint64(len(data))}
}

func beUint32(b []byte, i int) uint32 {
	return uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3])
}

// HashTag returns the midstate of SHA256(tag) || SHA256(tag), the
// fixed 64-byte prefix every BIP-340 tagged hash begins with. The
// returned Midstate always has bytesHashed == BlockSize and can be fed
// directly to FromMidstate to resume hashing the tagged message.
func HashTag(tag []byte) Midstate {
	h := HashUnoptimized(tag)
	var buf [2 * Size]byte
	for i := range buf {
		buf[i] = h[i%Size]
	}
	return ComputeMidstateUnoptimized(buf[:], false)
}
