package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

// London School of Economics constants.
const (
	lseBaseURL = "https://www.lse.ac.uk"
	lseID      = "LSE"

	lseTuitionFees   = "£9,250 (UK), £26,328 (International)"
	lseAccess        = "Competitive selection"
	lseAcademicYear  = "2025/2026"
	lseCodePrefixLen = 4
)

// lseIndicators are degree abbreviations accepted in a valid course name.
var lseIndicators = []string{"BSc", "BA", "MSc", "MA", "LLB", "LLM", "PhD", "MPhil", "MRes"}

// lseLinkIndicators are the abbreviations checked when scanning raw links on
// the JavaScript-heavy programme pages.
var lseLinkIndicators = []string{"BSc", "BA", "MSc", "MA", "LLB"}

// lseSubjects are subject keywords accepted in a valid course name.
var lseSubjects = []string{"Economics", "Finance", "Management", "Politics", "Law", "Sociology"}

// lseProgrammePaths are href substrings that mark a programme detail link.
var lseProgrammePaths = []string{"/offer-holder/", "/degree-programmes/"}

// minLinkTextLen is the minimum visible text length for a programme link.
const minLinkTextLen = 10

// lseMaxPerSelector caps how many matches of one selector are tried.
const lseMaxPerSelector = 20

// lseAreaRules is the first-match-wins subject area table for LSE.
// Order is significant and deliberately pinned by the slice.
var lseAreaRules = []AreaRule{
	{Area: "Economics", Keywords: []string{"Economics", "Econometrics", "Economic"}},
	{Area: "Finance", Keywords: []string{"Finance", "Accounting", "Actuarial"}},
	{Area: "Politics", Keywords: []string{"Politics", "Government", "International Relations"}},
	{Area: "Social Sciences", Keywords: []string{"Sociology", "Anthropology", "Social"}},
	{Area: "Management", Keywords: []string{"Management", "Business"}},
	{Area: "Data Science", Keywords: []string{"Data", "Statistics"}},
	{Area: "Law", Keywords: []string{"Law", "Legal"}},
}

// lseCandidates lists the programme pages tried in order, each with a type
// tag and an ordered list of CSS selectors.
var lseCandidates = []struct {
	path      string
	progType  string
	selectors []string
}{
	{
		path:     "/study-at-lse/undergraduate/degree-programmes-2025",
		progType: progUndergraduate,
		selectors: []string{
			`a[href*="/study-at-lse/undergraduate/offer-holder"]`,
			"div.contentSectionCTA a",
			"a.cta__link",
		},
	},
	{
		path:     "/study-at-lse/graduate/taught-programmes-2025",
		progType: progGraduate,
		selectors: []string{
			`a[href*="/study-at-lse/graduate/degree-programmes"]`,
			"div.contentSectionCTA a",
			"a.cta__link",
		},
	},
	{
		path:      "/programmes/search-courses",
		progType:  "search",
		selectors: []string{"div.programme-item", "article.course", "div.search-result"},
	},
}

// lseFallback is the known-programme catalogue used when live extraction
// yields nothing.
var lseFallback = []struct {
	name     string
	progType string
}{
	{"BSc Economics", progUndergraduate},
	{"BSc Finance", progUndergraduate},
	{"BSc Accounting and Finance", progUndergraduate},
	{"BSc Management", progUndergraduate},
	{"BSc International Relations", progUndergraduate},
	{"BSc Government", progUndergraduate},
	{"BSc Social Policy", progUndergraduate},
	{"BSc Sociology", progUndergraduate},
	{"BSc Geography and Economics", progUndergraduate},
	{"BSc Mathematics and Economics", progUndergraduate},
	{"BSc Econometrics and Mathematical Economics", progUndergraduate},
	{"BSc Data Science", progUndergraduate},
	{"BA History", progUndergraduate},
	{"BA Anthropology and Law", progUndergraduate},
	{"LLB Laws", progUndergraduate},
	{"MSc Economics", progGraduate},
	{"MSc Finance", progGraduate},
	{"MSc Accounting and Finance", progGraduate},
	{"MSc Management and Strategy", progGraduate},
	{"MSc Data Science", progGraduate},
	{"MSc International Relations", progGraduate},
	{"MSc Public Policy", progGraduate},
	{"MSc Development Economics", progGraduate},
	{"MSc Risk and Finance", progGraduate},
	{"MSc Marketing", progGraduate},
}

// LSE scrapes the London School of Economics programme listings.
type LSE struct {
	opts Options
}

// NewLSE creates the LSE scraper variant.
func NewLSE(opts Options) *LSE {
	opts.Logger = opts.Logger.WithComponent("scraper.lse")
	return &LSE{opts: opts}
}

// UniversityInfo returns the static institution record.
func (s *LSE) UniversityInfo() domain.University {
	return domain.University{
		ID:              lseID,
		Name:            "London School of Economics and Political Science",
		City:            "London",
		Region:          "Greater London",
		Website:         lseBaseURL,
		Email:           "admissions@lse.ac.uk",
		Phone:           "+44 (0)20 7405 7686",
		RankingNational: 1,
		RankingWorld:    50,
	}
}

// Courses tries the candidate listing pages in order. The undergraduate and
// graduate pages are JavaScript-heavy, so those are scanned link-by-link;
// the search page goes through the selector list. Scanning stops once enough
// courses are found, and the fallback catalogue covers an empty result.
func (s *LSE) Courses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course

	for i, cand := range lseCandidates {
		if i > 0 {
			if err := sleep(ctx, s.opts.Delay); err != nil {
				return nil, err
			}
		}

		pageURL := absoluteURL(lseBaseURL, cand.path)
		s.opts.Logger.Info("scraping course listing", "url", pageURL, "type", cand.progType)

		doc, err := s.opts.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.opts.Logger.Warn("listing fetch failed", "url", pageURL, "error", err)
			continue
		}

		switch cand.progType {
		case progUndergraduate, progGraduate:
			courses = append(courses, s.coursesFromLinks(doc, cand.progType)...)
		default:
			courses = append(courses, s.coursesFromSelectors(doc, cand.selectors)...)
		}

		if len(courses) >= minCoursesFound {
			break
		}
	}

	if len(courses) == 0 {
		s.opts.Logger.Info("no courses extracted, using fallback catalogue")
		courses = s.fallbackCourses()
	}

	return capCourses(dedupeCourses(courses)), nil
}

// coursesFromLinks scans every hyperlink on the page and keeps those whose
// href matches a known programme path, whose visible text is long enough,
// and whose text carries a degree abbreviation.
func (s *LSE) coursesFromLinks(doc *goquery.Document, progType string) []domain.Course {
	var courses []domain.Course

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := cleanText(sel.Text())

		if !containsAny(href, lseProgrammePaths) {
			return
		}
		if len(text) <= minLinkTextLen {
			return
		}
		if !containsAny(text, lseLinkIndicators) {
			return
		}

		courses = append(courses, s.newCourse(text, href, progType))
	})

	return courses
}

// coursesFromSelectors tries each selector in order; the first selector that
// yields any course wins.
func (s *LSE) coursesFromSelectors(doc *goquery.Document, selectors []string) []domain.Course {
	var courses []domain.Course

	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= lseMaxPerSelector {
				return false
			}
			if course, ok := s.courseFromElement(sel); ok {
				courses = append(courses, course)
			}
			return true
		})

		if len(courses) > 0 {
			break
		}
	}

	return courses
}

// courseFromElement extracts a course from a listing element: the first
// heading (h3, h2, h4, then a) that validates as a course name, plus the
// first hyperlink for the detail URL. A non-extractable element yields
// ok=false without aborting the broader scrape.
func (s *LSE) courseFromElement(sel *goquery.Selection) (domain.Course, bool) {
	var name string
	for _, tag := range []string{"h3", "h2", "h4", "a"} {
		nameEl := sel.Find(tag).First()
		if nameEl.Length() == 0 {
			continue
		}
		candidate := cleanText(nameEl.Text())
		if validCourseName(candidate, lseIndicators, lseSubjects) {
			name = candidate
			break
		}
	}

	if name == "" {
		return domain.Course{}, false
	}

	href, _ := sel.Find("a[href]").First().Attr("href")

	return s.newCourse(name, href, "general"), true
}

// fallbackCourses builds records from the hardcoded catalogue, passing each
// name through the same classification logic as live extraction.
func (s *LSE) fallbackCourses() []domain.Course {
	courses := make([]domain.Course, 0, len(lseFallback))
	for _, entry := range lseFallback {
		courses = append(courses, s.newCourse(entry.name, "", entry.progType))
	}
	return courses
}

// newCourse assembles a course record with LSE's fixed fee and access
// metadata, classifying degree level and duration from the name.
func (s *LSE) newCourse(name, href, progType string) domain.Course {
	name = cleanText(name)
	degreeType, years := ClassifyDegree(name, progType)

	courseURL := lseBaseURL
	if href != "" && !strings.HasPrefix(href, "http") {
		courseURL = absoluteURL(lseBaseURL, href)
	} else if href != "" {
		courseURL = href
	}

	return domain.Course{
		Code:            CourseCode(lseID, name, lseCodePrefixLen),
		Name:            name,
		Language:        "English",
		PeriodYears:     years,
		Type:            degreeType,
		ProgrammeAccess: lseAccess,
		AcademicYear:    lseAcademicYear,
		Area:            ClassifyArea(name, lseAreaRules),
		RemoteMode:      "In-person",
		TuitionFees:     lseTuitionFees,
		WebsiteUni:      lseBaseURL,
		WebsiteCourse:   courseURL,
		UniversityID:    lseID,
	}
}
