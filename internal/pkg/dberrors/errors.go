// Package dberrors inspects MongoDB driver errors.
package dberrors

import (
	"errors"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

const duplicateKeyCode = 11000

var (
	dupKeyFieldPattern = regexp.MustCompile(`dup key: \{ ?"?([A-Za-z0-9_.]+)"?\s*:`)
	dupKeyIndexPattern = regexp.MustCompile(`index: ([A-Za-z0-9_.]+)`)
)

// IsDuplicateKey reports whether err is a unique index violation.
func IsDuplicateKey(err error) bool {
	return err != nil && mongo.IsDuplicateKeyError(err)
}

// DuplicateKeyField extracts the offending field from an E11000 error. It
// prefers the dup key document and falls back to the index name; "unknown"
// when neither can be read.
func DuplicateKeyField(err error) string {
	if err == nil {
		return "unknown"
	}
	msg := err.Error()
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == duplicateKeyCode {
				msg = e.Message
				break
			}
		}
	}
	if m := dupKeyFieldPattern.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := dupKeyIndexPattern.FindStringSubmatch(msg); m != nil {
		name := strings.TrimSuffix(m[1], "_unique")
		return strings.TrimSuffix(name, "_1")
	}
	return "unknown"
}
