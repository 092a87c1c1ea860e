// Copyright © 2018 One Concern

package model

import "fmt"

// GetPathToChangelist yields the key of the changelist manifest within a
// staging store
func GetPathToChangelist() string {
	return "changelist.yaml"
}

// GetPathToObject yields the key of a staged content object for a fingerprint
func GetPathToObject(hash string) string {
	return fmt.Sprintf("objects/%s", hash)
}
