package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	sheetUniversities = "Universities"
	sheetCourses      = "Courses"
	sheetModules      = "Learning Modules"
	sheetRequirements = "Admission Requirements"
)

// writeExcel writes a four-sheet workbook under
// <dir>/excel/universities_export_<timestamp>.xlsx.
func (e *Exporter) writeExcel(snap *Snapshot) (string, error) {
	dir, err := e.ensureDir("excel")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir,
		fmt.Sprintf("universities_export_%s.xlsx", snap.ExportDate.Format(timestampLayout)))

	f := excelize.NewFile()
	defer f.Close()

	if buildErr := buildWorkbook(f, snap); buildErr != nil {
		return "", buildErr
	}

	if saveErr := f.SaveAs(path); saveErr != nil {
		return "", fmt.Errorf("failed to save Excel export: %w", saveErr)
	}

	e.log.Info("wrote Excel export", "path", path)
	return path, nil
}

func buildWorkbook(f *excelize.File, snap *Snapshot) error {
	if err := fillSheet(f, sheetUniversities, universityHeader, universityRows(snap)); err != nil {
		return err
	}
	if err := fillSheet(f, sheetCourses, courseHeader, courseRows(snap)); err != nil {
		return err
	}

	moduleHeader := []string{
		"learning_code", "learning_ssd", "learning_cfu", "learning_hour",
		"learning_language", "learning_ref", "degree_course_code",
		"university_id", "semester",
	}
	moduleRows := make([][]string, 0, len(snap.Modules))
	for _, m := range snap.Modules {
		moduleRows = append(moduleRows, []string{
			m.Code, m.SSD, fmt.Sprint(m.CFU), fmt.Sprint(m.Hours),
			m.Language, m.Ref, m.CourseCode, m.UniversityID, m.Semester,
		})
	}
	if err := fillSheet(f, sheetModules, moduleHeader, moduleRows); err != nil {
		return err
	}

	requirementHeader := []string{
		"requirement_id", "requirement_type", "requirement_description",
		"is_mandatory", "degree_course_code",
	}
	requirementRows := make([][]string, 0, len(snap.Requirements))
	for _, r := range snap.Requirements {
		requirementRows = append(requirementRows, []string{
			r.ID, r.Type, r.Description, fmt.Sprint(r.Mandatory), r.CourseCode,
		})
	}
	if err := fillSheet(f, sheetRequirements, requirementHeader, requirementRows); err != nil {
		return err
	}

	// Replace the default sheet with Universities as the front page.
	index, err := f.GetSheetIndex(sheetUniversities)
	if err != nil {
		return fmt.Errorf("failed to look up sheet index: %w", err)
	}
	f.SetActiveSheet(index)
	if delErr := f.DeleteSheet("Sheet1"); delErr != nil {
		return fmt.Errorf("failed to remove default sheet: %w", delErr)
	}

	return nil
}

// fillSheet creates the sheet and writes the header plus one row per record.
func fillSheet(f *excelize.File, name string, header []string, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	if err := writeRow(f, name, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, name, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}

	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if setErr := f.SetSheetRow(sheet, cell, &cells); setErr != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", rowNum, sheet, setErr)
	}

	return nil
}
