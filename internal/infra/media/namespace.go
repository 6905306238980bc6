package media

import (
	"path"
	"strings"

	"cashmemo/internal/errors"
)

// ownerFolder is the key prefix every object of owner lives under.
func ownerFolder(folder, owner string) (string, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" || strings.ContainsAny(owner, `/\`) || owner == "." || owner == ".." {
		return "", errors.Errorf("invalid media owner %q", owner)
	}

	return path.Join(folder, owner), nil
}

// ownsKey reports whether publicID is a clean key below the owner's folder.
func ownsKey(folder, owner, publicID string) bool {
	prefix, err := ownerFolder(folder, owner)
	if err != nil {
		return false
	}
	if publicID == "" || path.Clean(publicID) != publicID || strings.Contains(publicID, `\`) {
		return false
	}

	return strings.HasPrefix(publicID, prefix+"/")
}
