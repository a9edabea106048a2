package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BSc Economics", cleanText("  BSc \n\t Economics  "))
	assert.Equal(t, "", cleanText("   \n\t  "))
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		href string
		want string
	}{
		{
			name: "relative path",
			base: "https://www.lse.ac.uk",
			href: "/study-at-lse/undergraduate",
			want: "https://www.lse.ac.uk/study-at-lse/undergraduate",
		},
		{
			name: "absolute href passes through",
			base: "https://www.lse.ac.uk",
			href: "https://other.example/page",
			want: "https://other.example/page",
		},
		{
			name: "empty href",
			base: "https://www.lse.ac.uk",
			href: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, absoluteURL(tt.base, tt.href))
		})
	}
}

func TestValidCourseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "degree abbreviation", text: "BSc Econometrics", want: true},
		{name: "subject keyword", text: "Accounting and Finance", want: true},
		{name: "too short", text: "BSc", want: false},
		{name: "too long", text: "MSc " + strings.Repeat("x", maxCourseNameLen), want: false},
		{name: "no indicator or subject", text: "About the School", want: false},
		{name: "ui term", text: "Read more about BSc Economics", want: false},
		{name: "all uppercase heading", text: "MSC FINANCE AND ECONOMICS", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, validCourseName(tt.text, lseIndicators, lseSubjects))
		})
	}
}

func TestIsAllUpper(t *testing.T) {
	t.Parallel()

	assert.True(t, isAllUpper("GRADUATE STUDY 2025"))
	assert.False(t, isAllUpper("MSc Finance"))
	assert.False(t, isAllUpper("12345"))
}
