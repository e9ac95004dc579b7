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

//go:build !amd64 || purego

package sha256core

// CompressSHANI is unreachable on this build (hasSHANI is always
// false, see cpu_other.go) but is kept as a thin alias to
// CompressGeneric so the package builds uniformly across
// architectures and under the purego tag.
func CompressSHANI(state [8]uint32, block *[BlockSize]byte) [8]uint32 {
	return CompressGeneric(state, block)
}
