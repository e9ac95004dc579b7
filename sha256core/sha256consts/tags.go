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

// Package sha256consts holds precomputed SHA-256 tagged-hash midstates
// for the BIP-340/BIP-341/MuSig2 tags consumers of this module reach
// for most often. Each is computed once, at package init, via
// sha256core.HashTag — the same pattern used by the grounding pack's
// chainhash.precomputedTags table, just applied to midstates instead
// of plain tag digests.
package sha256consts

import "github.com/whos-gabi/rust-bitcoin/sha256core"

// Tag name strings, exactly as defined by BIP-340, BIP-341 and the
// MuSig2 specification.
const (
	TagNameTapLeaf           = "TapLeaf"
	TagNameTapBranch         = "TapBranch"
	TagNameTapTweak          = "TapTweak"
	TagNameTapSighash        = "TapSighash"
	TagNameBIP0340Challenge  = "BIP0340/challenge"
	TagNameBIP0340Aux        = "BIP0340/aux"
	TagNameBIP0340Nonce      = "BIP0340/nonce"
	TagNameKeyAggList        = "KeyAgg list"
	TagNameKeyAggCoefficient = "KeyAgg coefficient"
	TagNameMuSigNonceCoef    = "MuSig/noncecoef"
)

// Precomputed midstates for the tags above, one per tag name.
var (
	TapLeaf           = sha256core.HashTag([]byte(TagNameTapLeaf))
	TapBranch         = sha256core.HashTag([]byte(TagNameTapBranch))
	TapTweak          = sha256core.HashTag([]byte(TagNameTapTweak))
	TapSighash        = sha256core.HashTag([]byte(TagNameTapSighash))
	BIP0340Challenge  = sha256core.HashTag([]byte(TagNameBIP0340Challenge))
	BIP0340Aux        = sha256core.HashTag([]byte(TagNameBIP0340Aux))
	BIP0340Nonce      = sha256core.HashTag([]byte(TagNameBIP0340Nonce))
	KeyAggList        = sha256core.HashTag([]byte(TagNameKeyAggList))
	KeyAggCoefficient = sha256core.HashTag([]byte(TagNameKeyAggCoefficient))
	MuSigNonceCoef    = sha256core.HashTag([]byte(TagNameMuSigNonceCoef))
)

// byName maps a tag name to its precomputed midstate, mirroring
// chainhash's precomputedTags lookup table.
var byName = map[string]sha256core.Midstate{
	TagNameTapLeaf:           TapLeaf,
	TagNameTapBranch:         TapBranch,
	TagNameTapTweak:          TapTweak,
	TagNameTapSighash:        TapSighash,
	TagNameBIP0340Challenge:  BIP0340Challenge,
	TagNameBIP0340Aux:        BIP0340Aux,
	TagNameBIP0340Nonce:      BIP0340Nonce,
	TagNameKeyAggList:        KeyAggList,
	TagNameKeyAggCoefficient: KeyAggCoefficient,
	TagNameMuSigNonceCoef:    MuSigNonceCoef,
}

// Lookup returns the precomputed midstate for tag, if this package
// happens to carry one, saving the caller an extra SHA-256 pass over
// the tag bytes. The second return value is false for any tag not in
// the curated table above; callers should fall back to
// sha256core.HashTag(tag) in that case.
func Lookup(tag []byte) (sha256core.Midstate, bool) {
	m, ok := byName[string(tag)]
	return m, ok
}
