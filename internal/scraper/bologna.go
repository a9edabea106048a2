package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

// University of Bologna constants.
const (
	bolognaBaseURL = "https://www.unibo.it"
	bolognaID      = "UNIBO"

	bolognaTuitionFees      = "€2,925 - €3,295"
	bolognaAccess           = "Open access"
	bolognaAcademicYear     = "2025/2026"
	bolognaCodePrefixLen    = 3
	bolognaSecondCycleYears = 2
	// bolognaMaxPerSelector caps how many matches of one selector are tried.
	bolognaMaxPerSelector = 10
)

// bolognaAreaRules is the first-match-wins subject area table for Bologna.
// Order is significant and deliberately pinned by the slice.
var bolognaAreaRules = []AreaRule{
	{Area: "Engineering", Keywords: []string{"Engineering", "Computer", "Electronic", "Mechanical"}},
	{Area: "Medicine", Keywords: []string{"Medicine", "Medical", "Health", "Pharmaceutical"}},
	{Area: "Economics", Keywords: []string{"Economics", "Business", "Finance", "Management"}},
	{Area: "Sciences", Keywords: []string{"Physics", "Chemistry", "Biology", "Mathematics"}},
	{Area: "Humanities", Keywords: []string{"History", "Philosophy", "Literature", "Languages"}},
	{Area: "Law", Keywords: []string{"Law", "Legal", "Juridical"}},
}

// bolognaCandidates lists the degree listing pages tried in order.
var bolognaCandidates = []struct {
	path      string
	progType  string
	selectors []string
}{
	{
		path:      "/en/study/first-and-single-cycle-degree",
		progType:  progFirstCycle,
		selectors: []string{"div.course-item", "a[href*='/en/study/']"},
	},
	{
		path:      "/en/study/second-cycle-degree",
		progType:  progSecondCycle,
		selectors: []string{"div.course-item", "a[href*='/en/study/']"},
	},
}

// bolognaFallback is the known-programme catalogue used when live extraction
// yields nothing.
var bolognaFallback = []struct {
	name     string
	progType string
}{
	{"Computer Engineering", progFirstCycle},
	{"Business and Economics", progFirstCycle},
	{"Genomics", progFirstCycle},
	{"International Relations and Diplomatic Affairs", progFirstCycle},
	{"Pharmacy", progFirstCycle},
	{"Artificial Intelligence", progSecondCycle},
	{"Advanced Automotive Engineering", progSecondCycle},
	{"International Management", progSecondCycle},
	{"Law and Economics", progSecondCycle},
	{"Physics", progSecondCycle},
	{"Bioinformatics", progSecondCycle},
	{"Greening Energy Market and Finance", progSecondCycle},
}

// Bologna scrapes the University of Bologna degree listings.
type Bologna struct {
	opts Options
}

// NewBologna creates the Bologna scraper variant.
func NewBologna(opts Options) *Bologna {
	opts.Logger = opts.Logger.WithComponent("scraper.bologna")
	return &Bologna{opts: opts}
}

// UniversityInfo returns the static institution record.
func (s *Bologna) UniversityInfo() domain.University {
	return domain.University{
		ID:              bolognaID,
		Name:            "Università di Bologna",
		City:            "Bologna",
		Region:          "Emilia-Romagna",
		Website:         bolognaBaseURL,
		Email:           "internationaldesk@unibo.it",
		Phone:           "+39 051 2099111",
		RankingNational: 1,
		RankingWorld:    133,
	}
}

// Courses fetches the candidate listing pages in order and extracts
// programme records, stopping early once enough are found.
func (s *Bologna) Courses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course

	for i, cand := range bolognaCandidates {
		if i > 0 {
			if err := sleep(ctx, s.opts.Delay); err != nil {
				return nil, err
			}
		}

		pageURL := absoluteURL(bolognaBaseURL, cand.path)
		s.opts.Logger.Info("scraping course listing", "url", pageURL, "type", cand.progType)

		doc, err := s.opts.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.opts.Logger.Warn("listing fetch failed", "url", pageURL, "error", err)
			continue
		}

		courses = append(courses, s.extractListing(doc, cand.progType, cand.selectors)...)

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

// extractListing tries each selector in order and extracts course records
// from the matched elements.
func (s *Bologna) extractListing(doc *goquery.Document, progType string, selectors []string) []domain.Course {
	var courses []domain.Course

	for _, selector := range selectors {
		doc.Find(selector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
			if i >= bolognaMaxPerSelector {
				return false
			}
			if course, ok := s.courseFromElement(sel, progType); ok {
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

// courseFromElement extracts a single course from a listing element.
// The element is either the link itself or a container holding one.
func (s *Bologna) courseFromElement(sel *goquery.Selection, progType string) (domain.Course, bool) {
	link := sel
	if !sel.Is("a") {
		link = sel.Find("a[href]").First()
		if link.Length() == 0 {
			return domain.Course{}, false
		}
	}

	href, _ := link.Attr("href")
	if !strings.Contains(href, "degree") {
		return domain.Course{}, false
	}

	name := cleanText(link.Text())
	if len(name) < minCourseNameLen || len(name) > maxCourseNameLen {
		return domain.Course{}, false
	}

	return s.newCourse(name, href, progType), true
}

// fallbackCourses builds records from the hardcoded catalogue, passing each
// name through the same classification logic as live extraction.
func (s *Bologna) fallbackCourses() []domain.Course {
	courses := make([]domain.Course, 0, len(bolognaFallback))
	for _, entry := range bolognaFallback {
		courses = append(courses, s.newCourse(entry.name, "", entry.progType))
	}
	return courses
}

// newCourse assembles a course record with Bologna's fixed fee and access
// metadata. The degree cycle tag decides level and duration.
func (s *Bologna) newCourse(name, href, progType string) domain.Course {
	name = cleanText(name)

	degreeType := domain.DegreeBachelor
	years := domain.YearsBachelor
	if progType == progSecondCycle {
		degreeType = domain.DegreeMaster
		years = bolognaSecondCycleYears
	}

	courseURL := bolognaBaseURL
	if href != "" {
		courseURL = absoluteURL(bolognaBaseURL, href)
	}

	return domain.Course{
		Code:            CourseCode(bolognaID, name, bolognaCodePrefixLen),
		Name:            name,
		Language:        "English",
		PeriodYears:     years,
		Type:            degreeType,
		ProgrammeAccess: bolognaAccess,
		AcademicYear:    bolognaAcademicYear,
		Area:            ClassifyArea(name, bolognaAreaRules),
		RemoteMode:      "In-person",
		TuitionFees:     bolognaTuitionFees,
		WebsiteUni:      bolognaBaseURL,
		WebsiteCourse:   courseURL,
		UniversityID:    bolognaID,
	}
}
