package repository

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"macrobrief/internal/model"
	"macrobrief/internal/report"
)

var briefNamePattern = regexp.MustCompile(`^Macro_Report_(\d{4}-\d{2}-\d{2})\.md$`)

// BriefRepository reads generated briefs back from the report directory.
// The directory is the only store: one file per UTC date.
type BriefRepository struct {
	dir string
}

func NewBriefRepository(dir string) *BriefRepository {
	return &BriefRepository{dir: dir}
}

// ListBriefs returns the available briefs, newest date first.
func (r *BriefRepository) ListBriefs() ([]model.BriefInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var briefs []model.BriefInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := briefNamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, model.BriefInfo{Date: m[1], Size: info.Size()})
	}

	sort.Slice(briefs, func(i, j int) bool {
		return briefs[i].Date > briefs[j].Date
	})

	return briefs, nil
}

// GetBrief returns the brief for a date, or nil when none exists.
func (r *BriefRepository) GetBrief(date string) (*model.Brief, error) {
	path := filepath.Join(r.dir, report.FileName(date))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.Brief{Date: date, Content: string(data)}, nil
}

// GetLatestBrief returns the newest brief, or nil when the directory is empty.
func (r *BriefRepository) GetLatestBrief() (*model.Brief, error) {
	briefs, err := r.ListBriefs()
	if err != nil {
		return nil, err
	}
	if len(briefs) == 0 {
		return nil, nil
	}
	return r.GetBrief(briefs[0].Date)
}
