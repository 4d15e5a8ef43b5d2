package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/career-simulator/internal/domain"
)

// GenerateReport writes report in the named format to w.
func GenerateReport(w io.Writer, report *domain.SimulationReport, format string) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateFiles writes one timestamped file per format into dir. "all" expands to
// every registered formatter except the terminal renderer.
func GenerateFiles(report *domain.SimulationReport, formats []string, dir string) ([]string, error) {
	var expanded []string
	for _, name := range formats {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, n := range AvailableFormatterNames() {
				if n != "terminal" {
					expanded = append(expanded, n)
				}
			}
			continue
		}
		expanded = append(expanded, name)
	}

	var files []string
	for _, name := range expanded {
		f, err := Lookup(name)
		if err != nil {
			return files, err
		}
		path, err := WriteFormatted(f, report, dir)
		if err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}
