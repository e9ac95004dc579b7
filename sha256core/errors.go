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

import "fmt"

// NotAtBlockBoundaryError is returned by (*Engine).Midstate when the
// engine has not hashed a whole number of 64-byte blocks.
type NotAtBlockBoundaryError struct {
	// BytesHashed is the offending byte count.
	BytesHashed uint64
}

func (e *NotAtBlockBoundaryError) Error() string {
	return fmt.Sprintf("invalid number of bytes hashed %d (should have been a multiple of %d)", e.BytesHashed, BlockSize)
}
