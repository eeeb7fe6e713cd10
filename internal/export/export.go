// Package export serializes ledger snapshots into interchange formats.
package export

import (
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// Format selects the export serialization.
type Format int

const (
	CSV Format = iota
	JSON
	XML
)

// ParseFormat maps a caller-supplied tag to a Format.
func ParseFormat(tag string) (Format, error) {
	switch tag {
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "xml":
		return XML, nil
	default:
		return 0, domain.ErrUnsupportedFormat
	}
}

// String returns the wire tag of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return "csv"
	}
}

// ContentType returns the MIME type to serve the export under.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case XML:
		return "application/xml"
	default:
		return "text/csv"
	}
}

// Export serializes the snapshot in the requested format.
func Export(format Format, incomes []domain.Income, expenses []domain.Expense) (string, error) {
	switch format {
	case CSV:
		return exportCSV(incomes, expenses), nil
	case JSON:
		return exportJSON(incomes, expenses)
	case XML:
		return exportXML(incomes, expenses)
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

// formatLongDate renders dates the way the CSV and XML exports expect them.
func formatLongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
