package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/appello/internal/adapters/export"
	"github.com/okian/appello/internal/domain/model"
	"github.com/okian/appello/pkg/metrics"
)

// ExportDependencies defines the service surface for CSV exports.
type ExportDependencies interface {
	Athletes(ctx context.Context) []model.Athlete
	Teams(ctx context.Context) []model.Team
	Events(ctx context.Context) []model.Event
	AttendanceRecords(ctx context.Context) []model.AttendanceRecord
}

// ExportHandler serves CSV downloads of the roster data.
type ExportHandler struct {
	deps ExportDependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps ExportDependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// Download filenames follow the original export naming.
var exportFilenames = map[string]string{
	export.DocAthletes:   "atleti.csv",
	export.DocTeams:      "squadre.csv",
	export.DocAttendance: "presenze.csv",
}

// HandleExport handles GET /export/{athletes|teams|attendance}.csv.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	doc := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/export/"), ".csv")

	ctx := r.Context()
	var (
		content string
		rows    int
	)
	switch doc {
	case export.DocAthletes:
		content, rows = export.Athletes(h.deps.Athletes(ctx))
	case export.DocTeams:
		content, rows = export.Teams(h.deps.Teams(ctx), h.deps.Athletes(ctx))
	case export.DocAttendance:
		content, rows = export.Attendance(
			h.deps.AttendanceRecords(ctx),
			h.deps.Events(ctx),
			h.deps.Athletes(ctx),
			h.deps.Teams(ctx),
		)
	default:
		http.NotFound(w, r)
		return
	}
	metrics.RecordExportRows(doc, rows)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilenames[doc]))
	_, _ = w.Write([]byte(content))
}
