package helpers

// SanitizeSegment maps a display name to a path-safe segment. Every rune
// outside [A-Za-z0-9_] becomes an underscore. Total and deterministic, but
// not injective: differently named siblings may collide, which is accepted
// since paths are hierarchy bookkeeping, not identifiers.
func SanitizeSegment(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}

// ComposePath builds the materialized path for a node named name under a
// parent with parentPath. An empty parentPath means root.
func ComposePath(parentPath, name string) string {
	if parentPath == "" {
		return SanitizeSegment(name)
	}
	return parentPath + "." + SanitizeSegment(name)
}
