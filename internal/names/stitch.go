// Package names builds namespace-qualified display names within the
// data-set name length limit.
package names

// Stitch joins s1 and s2 with sep between them. If one side is empty the
// other is used alone. When max >= 0 bounds the result, a single string is
// cut from the back, but a stitched pair is cut from the front: the leaf
// name distinguishes better than outer namespace segments. A negative max
// means unbounded.
func Stitch(s1, s2 string, sep byte, max int) string {
	if s1 == "" && s2 == "" {
		return ""
	}
	if s1 == "" || s2 == "" {
		s := s1 + s2
		if max >= 0 && len(s) > max {
			s = s[:max]
		}
		return s
	}
	s := s1 + string(sep) + s2
	if max >= 0 && len(s) > max {
		s = s[len(s)-max:]
	}
	return s
}
