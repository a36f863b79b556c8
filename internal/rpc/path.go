package rpc

import (
	"strings"

	"github.com/dmitrijs2005/userdir/internal/common"
)

// CollectionPath addresses the whole user directory.
const CollectionPath = "usersList"

// ProfilePath addresses the profile owned by uid.
func ProfilePath(uid string) string {
	return CollectionPath + "/" + uid
}

// ParseProfilePath returns the uid addressed by a "usersList/{uid}" path.
func ParseProfilePath(path string) (string, error) {
	uid, ok := strings.CutPrefix(path, CollectionPath+"/")
	if !ok || uid == "" || strings.Contains(uid, "/") {
		return "", common.ErrInvalidPath
	}
	return uid, nil
}
