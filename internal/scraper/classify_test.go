package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/uniscrape/internal/domain"
)

func TestClassifyDegree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		course    string
		progType  string
		wantType  string
		wantYears int
	}{
		{
			name:      "graduate tag wins regardless of name",
			course:    "Economic History",
			progType:  progGraduate,
			wantType:  domain.DegreeMaster,
			wantYears: domain.YearsMaster,
		},
		{
			name:      "MSc abbreviation",
			course:    "MSc Economics",
			progType:  progUndergraduate,
			wantType:  domain.DegreeMaster,
			wantYears: domain.YearsMaster,
		},
		{
			name:      "LLM is a master's degree",
			course:    "LLM in International Business Law",
			progType:  "",
			wantType:  domain.DegreeMaster,
			wantYears: domain.YearsMaster,
		},
		{
			name:      "PhD",
			course:    "PhD Economics",
			progType:  "",
			wantType:  domain.DegreeDoctoral,
			wantYears: domain.YearsDoctoral,
		},
		{
			name:      "default is bachelor",
			course:    "BSc Economics",
			progType:  progUndergraduate,
			wantType:  domain.DegreeBachelor,
			wantYears: domain.YearsBachelor,
		},
		{
			name:      "Management does not match the MA abbreviation",
			course:    "BSc Management",
			progType:  "",
			wantType:  domain.DegreeBachelor,
			wantYears: domain.YearsBachelor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			degreeType, years := ClassifyDegree(tt.course, tt.progType)
			assert.Equal(t, tt.wantType, degreeType)
			assert.Equal(t, tt.wantYears, years)
		})
	}
}

func TestClassifyArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		course string
		rules  []AreaRule
		want   string
	}{
		{
			name:   "earlier rule wins on overlap",
			course: "Law and Economics",
			rules:  bolognaAreaRules,
			want:   "Economics",
		},
		{
			name:   "case insensitive match",
			course: "advanced automotive engineering",
			rules:  bolognaAreaRules,
			want:   "Engineering",
		},
		{
			name:   "business classifies as management",
			course: "BSc Business Analytics",
			rules:  lseAreaRules,
			want:   "Management",
		},
		{
			name:   "no match falls through to Other",
			course: "Greening Energy Market Studies",
			rules:  lseAreaRules,
			want:   "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ClassifyArea(tt.course, tt.rules))
		})
	}
}

func TestCourseCode(t *testing.T) {
	t.Parallel()

	code := CourseCode("UNIBO", "Computer Engineering", 3)

	assert.Regexp(t, `^UNIBO_COM_[0-9a-f]{8}$`, code)

	// The hash is derived from the name, so the same name always maps to the
	// same code and different names diverge.
	assert.Equal(t, code, CourseCode("UNIBO", "Computer Engineering", 3))
	assert.NotEqual(t, code, CourseCode("UNIBO", "Computer Science", 3))
}

func TestCourseCodeShortName(t *testing.T) {
	t.Parallel()

	// Names shorter than the prefix length keep the whole name as prefix.
	code := CourseCode("LSE", "Laws", 4)
	assert.Regexp(t, `^LSE_LAWS_[0-9a-f]{8}$`, code)
}
