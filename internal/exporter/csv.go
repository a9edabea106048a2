package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// writeCSV writes universities.csv and courses.csv into a timestamped
// subdirectory under <dir>/csv/. The empty module and requirement tables get
// no files of their own.
func (e *Exporter) writeCSV(snap *Snapshot) ([]string, error) {
	root, err := e.ensureDir("csv")
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(root, snap.ExportDate.Format(timestampLayout))
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return nil, fmt.Errorf("failed to create CSV directory: %w", mkErr)
	}

	universitiesPath := filepath.Join(dir, "universities.csv")
	if writeErr := writeCSVFile(universitiesPath, universityHeader, universityRows(snap)); writeErr != nil {
		return nil, writeErr
	}

	coursesPath := filepath.Join(dir, "courses.csv")
	if writeErr := writeCSVFile(coursesPath, courseHeader, courseRows(snap)); writeErr != nil {
		return nil, writeErr
	}

	e.log.Info("wrote CSV export", "dir", dir)
	return []string{universitiesPath, coursesPath}, nil
}

var universityHeader = []string{
	"university_id", "university_name", "university_city", "university_region",
	"university_website", "university_email", "university_phone",
	"university_ranking_national", "university_ranking_world",
}

var courseHeader = []string{
	"degree_course_code", "degree_course_name", "degree_course_language",
	"degree_course_period_years", "degree_course_type", "programme_access",
	"academic_year", "course_area", "remote_mode", "tuition_fees",
	"website_university", "website_course", "university_id",
}

func universityRows(snap *Snapshot) [][]string {
	rows := make([][]string, 0, len(snap.Universities))
	for _, u := range snap.Universities {
		rows = append(rows, []string{
			u.ID, u.Name, u.City, u.Region,
			u.Website, u.Email, u.Phone,
			strconv.Itoa(u.RankingNational), strconv.Itoa(u.RankingWorld),
		})
	}
	return rows
}

func courseRows(snap *Snapshot) [][]string {
	rows := make([][]string, 0, len(snap.Courses))
	for _, c := range snap.Courses {
		rows = append(rows, []string{
			c.Code, c.Name, c.Language,
			strconv.Itoa(c.PeriodYears), c.Type, c.ProgrammeAccess,
			c.AcademicYear, c.Area, c.RemoteMode, c.TuitionFees,
			c.WebsiteUni, c.WebsiteCourse, c.UniversityID,
		})
	}
	return rows
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if writeErr := w.Write(header); writeErr != nil {
		return fmt.Errorf("failed to write CSV header: %w", writeErr)
	}
	if writeErr := w.WriteAll(rows); writeErr != nil {
		return fmt.Errorf("failed to write CSV rows: %w", writeErr)
	}
	w.Flush()
	if flushErr := w.Error(); flushErr != nil {
		return fmt.Errorf("failed to flush %s: %w", path, flushErr)
	}

	return nil
}
