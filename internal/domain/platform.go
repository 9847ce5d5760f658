package domain

// CheckPlatform rejects operating systems the wrapper does not support.
// rsync semantics (trailing separators, path handling) are POSIX-shaped,
// so Windows is refused outright rather than half-working.
func CheckPlatform(goos string) error {
	if goos == "windows" {
		return ErrUnsupportedPlatform
	}
	return nil
}
