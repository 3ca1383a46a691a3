package stringutil

// Substring returns the characters of s in the half-open range [start, end),
// counting runes rather than bytes. It returns false when the range is
// reversed or falls outside s.
//
//	stringutil.Substring("Dollar and Cent", 7, 10) // "and", true
func Substring(s string, start, end int) (string, bool) {
	if start < 0 || start > end {
		return "", false
	}
	startByte, endByte := -1, -1
	n := 0
	for i := range s {
		if n == start {
			startByte = i
		}
		if n == end {
			endByte = i
			break
		}
		n++
	}
	if n == start && startByte < 0 {
		startByte = len(s)
	}
	if n == end && endByte < 0 {
		endByte = len(s)
	}
	if startByte < 0 || endByte < 0 {
		return "", false
	}
	return s[startByte:endByte], true
}
