package ports

import "github.com/aalvaropc/cubebag/internal/domain"

// ReportStore persists solve reports.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
