package service

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

const (
	maxSlugLength      = 100
	slugSuffixLength   = 4
	slugSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugSpacePattern    = regexp.MustCompile(`\s+`)
	slugCollapsePattern = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe slug from a display name: lowercased,
// special characters stripped, whitespace collapsed into hyphens, capped
// at 100 characters.
func GenerateSlug(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = slugSpacePattern.ReplaceAllString(slug, "-")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	return slug
}

// GenerateUniqueSlug appends a short random suffix to the base slug so a
// second business with the same name still gets a distinct slug.
func GenerateUniqueSlug(text string) string {
	return GenerateSlug(text) + "-" + randomSlugSuffix()
}

func randomSlugSuffix() string {
	suffix := make([]byte, slugSuffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(slugSuffixAlphabet))))
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a fixed character rather than panic during a request.
			suffix[i] = slugSuffixAlphabet[0]
			continue
		}
		suffix[i] = slugSuffixAlphabet[n.Int64()]
	}
	return string(suffix)
}
