package domain

import "time"

// Degree type classifications.
const (
	DegreeBachelor = "Bachelor's Degree"
	DegreeMaster   = "Master's Degree"
	DegreeDoctoral = "Doctoral Degree"
)

// Default durations in years per degree type.
const (
	YearsBachelor = 3
	YearsMaster   = 1
	YearsDoctoral = 4
)

// Course represents a single degree programme record.
type Course struct {
	// Code uniquely identifies the programme. It is derived from the
	// university ID, a name prefix, and a content hash of the name, so the
	// same programme maps to the same code across runs.
	Code            string    `db:"degree_course_code"         json:"degree_course_code"`
	Name            string    `db:"degree_course_name"         json:"degree_course_name"`
	Language        string    `db:"degree_course_language"     json:"degree_course_language"`
	PeriodYears     int       `db:"degree_course_period_years" json:"degree_course_period_years"`
	Type            string    `db:"degree_course_type"         json:"degree_course_type"`
	ProgrammeAccess string    `db:"programme_access"           json:"programme_access"`
	AcademicYear    string    `db:"academic_year"              json:"academic_year"`
	Area            string    `db:"course_area"                json:"course_area"`
	RemoteMode      string    `db:"remote_mode"                json:"remote_mode"`
	TuitionFees     string    `db:"tuition_fees"               json:"tuition_fees"`
	WebsiteUni      string    `db:"website_university"         json:"website_university"`
	WebsiteCourse   string    `db:"website_course"             json:"website_course"`
	UniversityID    string    `db:"university_id"              json:"university_id"`
	LastUpdated     time.Time `db:"last_updated"               json:"last_updated"`
}
