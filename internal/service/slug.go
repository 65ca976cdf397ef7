package service

import (
	"regexp"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	slugLength = 6
	// No 0/O, 1/l/I.
	slugAlphabet = "23456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

	maxSlugAttempts = 5
)

var customSlugRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func generateSlug() (string, error) {
	return gonanoid.Generate(slugAlphabet, slugLength)
}
