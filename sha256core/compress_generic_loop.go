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

//go:build sha256small

package sha256core

// CompressGeneric is the portable scalar SHA-256 compression function.
//
// Built with the sha256small tag, it keeps the message schedule as a
// sliding 16-word window addressed modulo 16 instead of a full 64-word
// array, trading a handful of extra index computations for a smaller
// schedule array. It must produce exactly the same state transition as
// the default build for every block.
func CompressGeneric(state [8]uint32, block *[BlockSize]byte) [8]uint32 {
	w := decodeBlock(block)

	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		idx := i & 15
		if i >= 16 {
			w[idx] = smallSigma1(w[(idx+14)&15]) + w[(idx+9)&15] + smallSigma0(w[(idx+1)&15]) + w[idx]
		}
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[i] + w[idx]
		t2 := bigSigma0(a) + maj(a, b, c)
		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{
		state[0] + a, state[1] + b, state[2] + c, state[3] + d,
		state[4] + e, state[5] + f, state[6] + g, state[7] + h,
	}
}
