package service

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/maxwsy/leetcode-report/internal/model"
)

const (
	ReportTitle   = "Leetcode Status Report"
	SubjectPrefix = ReportTitle + " on "
)

// text/template on purpose: field values are embedded without HTML escaping.
var reportTemplate = template.Must(template.New("report").Parse(`<html>
<body>
    <h2>` + ReportTitle + `</h2>
    <h3>Solved Summary</h3>
    <table border="1" style="border-collapse: collapse;">
        <tr>
            <th>Difficulty</th>
            <th>Solved</th>
            <th>Submissions</th>
        </tr>
{{- range .Summary}}
        <tr>
            <td>{{.Difficulty}}</td>
            <td>{{.Solved}}</td>
            <td>{{.Submissions}}</td>
        </tr>
{{- end}}
    </table>
    <h3>Latest Submissions</h3>
    <table border="1" style="border-collapse: collapse;">
        <tr>
            <th>Title</th>
            <th>Status</th>
            <th>Language</th>
            <th>Timestamp</th>
        </tr>
{{- range .Submissions}}
        <tr>
            <td>{{.Title}}</td>
            <td>{{.StatusDisplay}}</td>
            <td>{{.Lang}}</td>
            <td>{{.Timestamp}}</td>
        </tr>
{{- end}}
    </table>
</body>
</html>
`))

type SummaryRow struct {
	Difficulty  string
	Solved      int
	Submissions int
}

type Report struct {
	Summary     []SummaryRow
	Submissions []model.SubmissionRecord
	HTML        string
}

// SummaryRows pairs every accepted count with the first total entry of the same
// difficulty. Accepted entries without a counterpart produce no row.
func SummaryRows(summary model.SolvedSummary) []SummaryRow {
	rows := make([]SummaryRow, 0, len(summary.ACSubmissionNum))
	for _, ac := range summary.ACSubmissionNum {
		total, ok := lo.Find(summary.TotalSubmissionNum, func(t model.DifficultySubmissions) bool {
			return t.Difficulty == ac.Difficulty
		})
		if !ok {
			continue
		}
		rows = append(rows, SummaryRow{
			Difficulty:  ac.Difficulty,
			Solved:      ac.Count,
			Submissions: total.Submissions,
		})
	}
	return rows
}

func RenderReport(stats *model.CombinedStats) (*Report, error) {
	report := &Report{
		Summary:     SummaryRows(stats.SolvedSummary),
		Submissions: stats.LatestSubmissions.Submission,
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, report); err != nil {
		return nil, errors.Wrap(err, "failed to render report")
	}
	report.HTML = sb.String()

	return report, nil
}
