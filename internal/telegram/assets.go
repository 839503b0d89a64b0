package telegram

import (
	"strings"
	"unicode"
)

// fallbackAssets is served when the live top-5 list is unavailable.
var fallbackAssets = []string{"bitcoin", "ethereum", "binancecoin", "ripple", "cardano"}

// extraAsset is always appended to the selection keyboard.
const extraAsset = "Toncoin"

// assetID maps a user-facing label to the CoinGecko id: lowercase the
// label, with Toncoin as the one exception.
func assetID(label string) string {
	id := strings.ToLower(strings.TrimSpace(label))
	if id == "toncoin" {
		return "the-open-network"
	}
	return id
}

// titleCase upper-cases every letter that follows a non-letter, so
// hyphenated ids label cleanly ("staked-ether" -> "Staked-Ether").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			r = unicode.ToUpper(r)
		}
		prevLetter = unicode.IsLetter(r)
		b.WriteRune(r)
	}
	return b.String()
}
