package entity

import (
	"regexp"
	"strings"
)

// NativeSymbol is the ticker of the chain's base currency.
const NativeSymbol = "SOL"

// LamportsPerSOL is the fixed divisor between the chain's smallest unit and one SOL.
const LamportsPerSOL = 1_000_000_000

// base58Alphabet is the Bitcoin-style base58 character set used by Solana
// addresses: digits and letters excluding 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	minAddressLen = 32
	maxAddressLen = 44
)

// addressPattern matches the first base58 run of plausible address length
// inside free text.
var addressPattern = regexp.MustCompile(`\b[1-9A-HJ-NP-Za-km-z]{32,44}\b`)

// IsValidAddress reports whether s has the shape of a Solana address:
// length 32-44 and base58 alphabet only. The encoding checksum is not
// verified; a well-shaped but non-existent address passes here and fails
// later at the fetch stage.
func IsValidAddress(s string) bool {
	if len(s) < minAddressLen || len(s) > maxAddressLen {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(base58Alphabet, r) {
			return false
		}
	}
	return true
}

// ExtractAddress returns the first address-shaped substring of text, or ""
// when none is present.
func ExtractAddress(text string) string {
	return addressPattern.FindString(text)
}

// LamportsToSOL converts a raw lamport amount to SOL units.
func LamportsToSOL(lamports uint64) float64 {
	return float64(lamports) / LamportsPerSOL
}
