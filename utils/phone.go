package utils

import "strings"

// NormalizePhone composes a full phone number from a country code and a local
// number. Leading zeros on the local part are dropped, so "+32" + "0492525183"
// becomes "+32492525183".
func NormalizePhone(countryCode, local string) string {
	local = strings.ReplaceAll(local, " ", "")
	local = strings.TrimLeft(local, "0")
	return countryCode + local
}
