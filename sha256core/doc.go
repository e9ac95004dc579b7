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

// Package sha256core implements the FIPS 180-4 SHA-256 compression
// function, a streaming engine built on top of it, and a midstate
// abstraction that lets callers resume hashing from any block-aligned
// prefix.
//
// The package is deliberately narrow: it has no notion of a "digest"
// newtype, no HMAC, and no file I/O. Those concerns belong to whatever
// wraps this core (double-SHA-256, BIP-340 tagged hashing, and so on).
//
// Two compression backends exist and must always agree bit-for-bit:
// CompressGeneric is the portable scalar implementation, and
// CompressSHANI, which arranges the rounds in the two-lane layout of
// the x86 SHA instructions but computes them in plain Go, is the path
// used on x86/x86-64 hosts that expose the SHA, SSE2, SSSE3 and SSE4.1
// instruction sets. Compress
// picks between them once at process start and is the only entry point
// most callers need.
package sha256core
