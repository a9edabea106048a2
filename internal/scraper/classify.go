package scraper

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

// Programme type tags attached to candidate listing URLs.
const (
	progUndergraduate = "undergraduate"
	progGraduate      = "graduate"
	progFirstCycle    = "first_cycle"
	progSecondCycle   = "second_cycle"
)

// masterIndicators are degree abbreviations that classify a programme as a
// master's degree. Checked before the PhD rule; order matters.
var masterIndicators = []string{"MSc", "MA", "MRes", "MPhil"}

// codeHashLen is the number of content-hash hex characters in a course code.
const codeHashLen = 8

// ClassifyDegree determines the degree type and duration from the programme
// name and an optional type tag. The checks are ordered substring matches:
// a graduate tag or master abbreviation wins first, then LLM, then PhD;
// anything else is a bachelor's degree.
func ClassifyDegree(name, progType string) (degreeType string, years int) {
	if progType == progGraduate || containsAny(name, masterIndicators) {
		return domain.DegreeMaster, domain.YearsMaster
	}
	if strings.Contains(name, "LLM") {
		return domain.DegreeMaster, domain.YearsMaster
	}
	if strings.Contains(name, "PhD") {
		return domain.DegreeDoctoral, domain.YearsDoctoral
	}
	return domain.DegreeBachelor, domain.YearsBachelor
}

// AreaRule maps a subject area to the keywords that select it.
type AreaRule struct {
	Area     string
	Keywords []string
}

// ClassifyArea scans the rules in slice order and returns the first area with
// a keyword found in the name (case-insensitive). Ties between overlapping
// keywords are resolved by rule order, which is pinned by the slice; "Other"
// when nothing matches.
func ClassifyArea(name string, rules []AreaRule) string {
	upper := strings.ToUpper(name)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(keyword)) {
				return rule.Area
			}
		}
	}
	return "Other"
}

// CourseCode derives a programme identifier from the university ID, a
// fixed-length uppercase name prefix, and the first 8 hex characters of the
// name's SHA-256 digest. The content hash keeps codes stable across runs so
// re-scrapes replace rows instead of accumulating new ones.
func CourseCode(universityID, name string, prefixLen int) string {
	prefix := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(prefix) > prefixLen {
		prefix = prefix[:prefixLen]
	}

	sum := sha256.Sum256([]byte(name))
	hash := hex.EncodeToString(sum[:])[:codeHashLen]

	return universityID + "_" + prefix + "_" + hash
}

// containsAny reports whether any of the needles occurs in s (case-sensitive).
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
