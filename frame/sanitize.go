/*
nettf - LAN file and directory transfer utility.

Path sanitization for anything received on the wire before it ever touches
the filesystem. The leading-slash strip below never actually runs, since an
absolute path already fails the check above it; left in place rather than
removed, since neither branch changes observable behavior.
*/

package frame

import "strings"

// MaxPathLen is the maximum length accepted for a sanitized target
// directory or tree entry path.
const MaxPathLen = 4096

// sanitizeRelative applies the shared path-sanitization rule to s and
// returns the cleaned relative path. Empty input is valid and means
// "no prefix" (current directory).
func sanitizeRelative(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	if strings.Contains(s, "..") {
		return "", wrapf(ErrPathRejected, "path %q contains \"..\"", s)
	}

	if s[0] == '/' {
		return "", wrapf(ErrPathRejected, "path %q is absolute", s)
	}

	clean := strings.TrimLeft(s, "/")

	if len(clean) > MaxPathLen {
		return "", wrapf(ErrPathRejected, "path exceeds %d bytes", MaxPathLen)
	}

	return clean, nil
}

// sanitizeTarget sanitizes a target-directory string received on the wire.
func sanitizeTarget(s string) (string, error) {
	return sanitizeRelative(s)
}

// sanitizeEntryPath sanitizes a relative entry path inside a directory-tree
// frame. Unlike a bare filename it is allowed to contain '/' separators.
func sanitizeEntryPath(s string) (string, error) {
	if s == "" {
		return "", wrapf(ErrPathRejected, "entry path is empty")
	}
	return sanitizeRelative(s)
}

// sanitizeFilename validates a non-tree FILE/TARG filename: it must not be
// empty and must not contain a path separator, even though the sender is
// required to send a basename already.
func sanitizeFilename(s string) (string, error) {
	if s == "" {
		return "", wrapf(ErrPathRejected, "filename is empty")
	}
	if strings.ContainsAny(s, "/\\") {
		return "", wrapf(ErrPathRejected, "filename %q contains a path separator", s)
	}
	return s, nil
}
