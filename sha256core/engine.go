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

import "encoding/binary"

// Engine is a streaming SHA-256 compression engine. It buffers input
// bytes, feeding the compression function one 64-byte block at a
// time, and tracks the total number of bytes fed to it.
//
// An Engine is exclusively owned by its caller; concurrent calls on
// the same Engine are unsafe. The zero value is not usable — construct
// one with New or FromMidstate.
type Engine struct {
	state       [8]uint32
	buffer      [BlockSize]byte
	bytesHashed uint64
}

// New returns an Engine initialized to the FIPS 180-4 initial hash
// value with no bytes hashed.
func New() *Engine {
	return &Engine{state: iv}
}

// FromMidstate returns an Engine resuming from m. The caller warrants
// that m actually reflects some valid sequence of m.bytesHashed input
// bytes; Engine has no way to check this.
func FromMidstate(m Midstate) *Engine {
	return &Engine{state: m.decodeState(), bytesHashed: m.bytesHashed}
}

// Write appends p to the engine, compressing every full block as it
// is formed. It accepts input of any length, including zero, and
// never returns an error: Engine satisfies io.Writer so that
// higher-level callers can adapt it directly.
func (e *Engine) Write(p []byte) (int, error) {
	n := len(p)
	e.bytesHashed += uint64(n)

	fill := int(e.bytesHashed-uint64(n)) % BlockSize
	if fill > 0 {
		copied := copy(e.buffer[fill:], p)
		p = p[copied:]
		if fill+copied == BlockSize {
			e.state = Compress(e.state, &e.buffer)
		}
	}

	for len(p) >= BlockSize {
		var block [BlockSize]byte
		copy(block[:], p[:BlockSize])
		e.state = Compress(e.state, &block)
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		copy(e.buffer[:], p)
	}

	return n, nil
}

// NBytesHashed returns the total number of bytes ever fed to the
// engine via Write.
func (e *Engine) NBytesHashed() uint64 { return e.bytesHashed }

// CanExtractMidstate reports whether the engine currently sits on a
// block boundary, i.e. whether Midstate would succeed.
func (e *Engine) CanExtractMidstate() bool { return e.bytesHashed%BlockSize == 0 }

// Midstate returns the engine's current state as a Midstate. It fails
// with a *NotAtBlockBoundaryError if the engine has not hashed a
// whole number of blocks; extracting a midstate does not finalize the
// engine, and it remains usable for further Write calls either way.
func (e *Engine) Midstate() (Midstate, error) {
	if !e.CanExtractMidstate() {
		return Midstate{}, &NotAtBlockBoundaryError{BytesHashed: e.bytesHashed}
	}
	return Midstate{bytes: encodeState(e.state), bytesHashed: e.bytesHashed}, nil
}

// Sum pads and finalizes a copy of the engine per FIPS 180-4 and
// returns the resulting 32-byte digest. The receiver is left
// untouched and may continue to be written to, matching the
// convention of hash.Hash.Sum rather than the source implementation's
// by-value consuming finalize (see DESIGN.md).
func (e *Engine) Sum() [Size]byte {
	scratch := *e

	nBytesHashed := scratch.bytesHashed

	scratch.Write([]byte{0x80})
	if int(scratch.bytesHashed%BlockSize) > BlockSize-8 {
		scratch.Write(make([]byte, BlockSize-int(scratch.bytesHashed%BlockSize)))
	}
	// The BlockSize-8 branch above already pushed bytesHashed%BlockSize
	// back to 0 whenever it would have made padLen negative here.
	padLen := BlockSize - 8 - int(scratch.bytesHashed%BlockSize)
	scratch.Write(make([]byte, padLen))

	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], nBytesHashed*8)
	scratch.Write(lenBytes[:])

	return encodeState(scratch.state)
}
