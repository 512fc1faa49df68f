package database

import "strings"

// isUniqueViolation detects sqlite unique-constraint failures so the store
// can translate them into the validation taxonomy instead of leaking a raw
// storage error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "constraint failed")
}
