package utils

import (
	"regexp"

	"github.com/google/uuid"
)

var uuidV4Pattern = regexp.MustCompile(`(?i)^[0-9A-F]{8}-[0-9A-F]{4}-4[0-9A-F]{3}-[89AB][0-9A-F]{3}-[0-9A-F]{12}$`)

// GenerateUUID returns a random (version 4) UUID.
func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// IsUUIDv4 reports whether s is the canonical textual form of a version 4 UUID.
func IsUUIDv4(s string) bool {
	return uuidV4Pattern.MatchString(s)
}
