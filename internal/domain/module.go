package domain

// LearningModule represents a teaching unit within a degree programme.
// The schema exists for future enrichment; current scrapers do not populate it.
type LearningModule struct {
	Code         string `db:"learning_code"      json:"learning_code"`
	SSD          string `db:"learning_ssd"       json:"learning_ssd"`
	CFU          int    `db:"learning_cfu"       json:"learning_cfu"`
	Hours        int    `db:"learning_hour"      json:"learning_hour"`
	Language     string `db:"learning_language"  json:"learning_language"`
	Ref          string `db:"learning_ref"       json:"learning_ref"`
	CourseCode   string `db:"degree_course_code" json:"degree_course_code"`
	UniversityID string `db:"university_id"      json:"university_id"`
	Semester     string `db:"semester"           json:"semester"`
}

// AdmissionRequirement represents an entry requirement for a degree programme.
// Reserved for future enrichment, like LearningModule.
type AdmissionRequirement struct {
	ID          string `db:"requirement_id"          json:"requirement_id"`
	Type        string `db:"requirement_type"        json:"requirement_type"`
	Description string `db:"requirement_description" json:"requirement_description"`
	Mandatory   bool   `db:"is_mandatory"            json:"is_mandatory"`
	CourseCode  string `db:"degree_course_code"      json:"degree_course_code"`
}
