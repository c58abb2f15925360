package sync

import (
	"time"

	"github.com/metafates/gache"
	"github.com/prism-vault/prism/filesystem"
)

// Report records the outcome of one synchronization.
type Report struct {
	Theme   string    `json:"theme"`
	At      time.Time `json:"at"`
	Results Result    `json:"results"`
}

// NewReport stamps a result with the current time.
func NewReport(themeID string, result Result) Report {
	return Report{Theme: themeID, At: time.Now(), Results: result}
}

// ReportStore persists the last report.
type ReportStore struct {
	cacher *gache.Cache[*Report]
}

// NewReportStore returns a store keeping the report at path.
func NewReportStore(path string) *ReportStore {
	return &ReportStore{
		cacher: gache.New[*Report](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (s *ReportStore) Save(report Report) error {
	return s.cacher.Set(&report)
}

// Last returns the most recent report; ok is false if none was saved.
func (s *ReportStore) Last() (report Report, ok bool, err error) {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		return Report{}, false, err
	}
	if expired || cached == nil {
		return Report{}, false, nil
	}
	return *cached, true, nil
}
