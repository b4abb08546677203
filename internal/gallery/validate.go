package gallery

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultExtensions are the file extensions accepted as images.
var DefaultExtensions = []string{"jpeg", "jpg", "png", "gif", "bmp", "webp", "svg"}

// DefaultTrustedDomains are hosts whose URLs are accepted without an
// extension check.
var DefaultTrustedDomains = []string{"unsplash.com"}

// maxSuggestDistance bounds how far a mistyped extension may be from a known
// one before no suggestion is offered.
const maxSuggestDistance = 2

// Validator decides whether a string is plausibly an image URL.
//
// A URL passes when it ends in a known extension (case-insensitive,
// optionally followed by a query string) or contains a trusted domain
// anywhere. The domain rule is a convenience shortcut, not a security
// boundary.
type Validator struct {
	extensions     []string
	trustedDomains []string
	pattern        *regexp.Regexp
}

// NewValidator builds a validator. Empty lists fall back to the defaults.
func NewValidator(extensions, trustedDomains []string) *Validator {
	exts := normalizeList(extensions)
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	domains := normalizeList(trustedDomains)
	if trustedDomains == nil {
		domains = DefaultTrustedDomains
	}
	quoted := make([]string, len(exts))
	for i, e := range exts {
		quoted[i] = regexp.QuoteMeta(e)
	}
	return &Validator{
		extensions:     exts,
		trustedDomains: domains,
		pattern:        regexp.MustCompile(`(?i)\.(` + strings.Join(quoted, "|") + `)(\?.*)?$`),
	}
}

// DefaultValidator returns a validator with the default rules.
func DefaultValidator() *Validator {
	return NewValidator(nil, nil)
}

// IsImageURL applies the image predicate to an already trimmed URL.
func (v *Validator) IsImageURL(url string) bool {
	if v.pattern.MatchString(url) {
		return true
	}
	for _, d := range v.trustedDomains {
		if strings.Contains(url, d) {
			return true
		}
	}
	return false
}

// Validate trims raw and returns the URL to store, or a *ValidationError.
func (v *Validator) Validate(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", &ValidationError{Input: raw, Reason: ReasonEmpty}
	}
	if !v.IsImageURL(url) {
		return "", &ValidationError{Input: raw, Reason: ReasonNotImage, Suggestion: v.suggest(url)}
	}
	return url, nil
}

// suggest returns the known extension closest to url's extension, e.g.
// ".jpg" for "photo.jgp". Ties go to the earlier extension in the list.
func (v *Validator) suggest(url string) string {
	ext := extensionOf(url)
	if len(ext) < 2 {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range v.extensions {
		d := levenshtein.ComputeDistance(ext, known)
		if d > 0 && d < bestDist {
			best, bestDist = known, d
		}
	}
	if best == "" {
		return ""
	}
	return "." + best
}

// extensionOf returns the lowercased extension of the last path segment,
// ignoring any query string or fragment.
func extensionOf(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	i := strings.LastIndex(url, ".")
	if i < 0 || i == len(url)-1 {
		return ""
	}
	ext := strings.ToLower(url[i+1:])
	if len(ext) > 5 {
		return ""
	}
	return ext
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), ".")))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
