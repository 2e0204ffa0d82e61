package services

import (
	"encoding/csv"
	"strings"

	"github.com/vishal1412/PropScan-sub000/internal/domain"
)

// csvDateLayout renders timestamps without any locale or zone dependence;
// values are converted to UTC before formatting.
const csvDateLayout = "2006-01-02 15:04:05"

var leadCSVHeader = []string{
	"ID", "Name", "Phone", "Email", "City", "Budget", "Purpose", "Message", "Source", "Date (UTC)",
}

// ExportLeadsCSV renders leads as a CSV document with a header row. It is a
// pure function over the in-memory list: given the same leads it produces
// byte-identical output.
func ExportLeadsCSV(leads []*domain.Lead) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	_ = w.Write(leadCSVHeader)
	for _, lead := range leads {
		_ = w.Write([]string{
			lead.ID,
			lead.Name,
			lead.Phone,
			lead.Email,
			lead.City,
			lead.Budget,
			lead.Purpose,
			lead.Message,
			lead.Source,
			lead.CreatedAt.UTC().Format(csvDateLayout),
		})
	}
	w.Flush()

	return b.String()
}
