package matrix

import (
	"strings"
	"unicode"
)

// NameNormalizer turns a raw sample column name into a short
// human-readable sample name. It is a pluggable strategy: the fastq
// convention below encodes one sequencing-run naming scheme, and
// alternate schemes can be added without touching the builder.
type NameNormalizer interface {
	Name() string
	Normalize(raw string) string
}

// FastqSiteNormalizer handles the `{num}-{num}-{site}-{num}.fastq`
// convention used by the sequencing pipeline, e.g.
// "1-2-tamagawa-6000.fastq" -> "tamagawa-1".
type FastqSiteNormalizer struct{}

// NewFastqSiteNormalizer creates the default normalizer
func NewFastqSiteNormalizer() *FastqSiteNormalizer {
	return &FastqSiteNormalizer{}
}

// Name returns the strategy name
func (n *FastqSiteNormalizer) Name() string {
	return "fastq_site"
}

// Normalize derives the sample name from a raw column name
func (n *FastqSiteNormalizer) Normalize(raw string) string {
	name := stripFastqSuffix(raw)

	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return name
	}

	// The site token sits between the leading replicate numbers and
	// the trailing read count.
	site := parts[2]
	if len(parts) > 3 {
		site = strings.Join(parts[2:len(parts)-1], "-")
	}

	if isDigits(parts[0]) {
		return site + "-" + parts[0]
	}
	return site
}

// stripFastqSuffix removes one trailing ".fastq" suffix, any case
func stripFastqSuffix(s string) string {
	const suffix = ".fastq"
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)]
	}
	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
