package resurface

import "unicode/utf16"

// StableHash is a polynomial rolling hash (h*31 + c) over the UTF-16 code units of s
// arithmetic wraps at 32 bits and the absolute value is taken in 64 bit space so the
// result is never negative, MinInt32 included
func StableHash(s string) int64 {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(cu)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// CooldownDays is the per owner gap enforced between two surfacing events
// it lands in [BaseCooldownDays, BaseCooldownDays+CooldownSpreadDays)
func (r Rules) CooldownDays(ownerID string) int {
	spread := int64(r.CooldownSpreadDays)
	if spread <= 0 {
		return r.BaseCooldownDays
	}
	return r.BaseCooldownDays + int(StableHash(ownerID)%spread)
}

// PickIndex returns the candidate index for ownerID on day
// the same owner and calendar day always yield the same index for a given pool size
func PickIndex(ownerID string, day Day, n int) int {
	if n <= 0 {
		return -1
	}
	return int(StableHash(ownerID+"-"+day.String()) % int64(n))
}
