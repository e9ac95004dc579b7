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

//go:build amd64 && !purego

package sha256core

import "golang.org/x/sys/cpu"

// hasSHANI records whether this host's CPU exposes the instruction
// set CompressSHANI needs: SHA, SSE2, SSSE3 and SSE4.1. The probe is
// cheap and runs once at package init; Compress reads the memoized
// result on every block rather than re-probing.
var hasSHANI = cpu.X86.HasSHA && cpu.X86.HasSSE2 && cpu.X86.HasSSSE3 && cpu.X86.HasSSE41
