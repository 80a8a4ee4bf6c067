package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwsy/leetcode-report/internal/model"
)

var rowRe = regexp.MustCompile(`(?s)<tr>(.*?)</tr>`)
var cellRe = regexp.MustCompile(`<td>(.*?)</td>`)

// tableRows returns the <td> values of the data rows of the n-th table in html.
func tableRows(t *testing.T, html string, n int) [][]string {
	t.Helper()

	tables := strings.Split(html, "<table")
	require.Greater(t, len(tables), n+1, "table %d not rendered", n)
	table := tables[n+1]

	var rows [][]string
	for _, row := range rowRe.FindAllStringSubmatch(table, -1) {
		cells := cellRe.FindAllStringSubmatch(row[1], -1)
		if len(cells) == 0 {
			continue // header
		}
		values := make([]string, 0, len(cells))
		for _, c := range cells {
			values = append(values, c[1])
		}
		rows = append(rows, values)
	}
	return rows
}

func TestRenderReportSolvedSummary(t *testing.T) {
	type testCase struct {
		name   string
		args   model.SolvedSummary
		expect [][]string
	}

	testCases := []testCase{
		{
			name: "matched",
			args: model.SolvedSummary{
				ACSubmissionNum:    []model.DifficultyCount{{Difficulty: "Easy", Count: 5}},
				TotalSubmissionNum: []model.DifficultySubmissions{{Difficulty: "Easy", Submissions: 10}},
			},
			expect: [][]string{{"Easy", "5", "10"}},
		},
		{
			name: "unmatched difficulty is skipped",
			args: model.SolvedSummary{
				ACSubmissionNum:    []model.DifficultyCount{{Difficulty: "Easy", Count: 5}, {Difficulty: "Medium", Count: 2}, {Difficulty: "Hard", Count: 1}},
				TotalSubmissionNum: []model.DifficultySubmissions{{Difficulty: "Hard", Submissions: 4}, {Difficulty: "Easy", Submissions: 10}},
			},
			expect: [][]string{{"Easy", "5", "10"}, {"Hard", "1", "4"}},
		},
		{
			name: "first match wins",
			args: model.SolvedSummary{
				ACSubmissionNum:    []model.DifficultyCount{{Difficulty: "Easy", Count: 5}},
				TotalSubmissionNum: []model.DifficultySubmissions{{Difficulty: "Easy", Submissions: 10}, {Difficulty: "Easy", Submissions: 99}},
			},
			expect: [][]string{{"Easy", "5", "10"}},
		},
		{
			name:   "empty",
			args:   model.SolvedSummary{},
			expect: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			report, err := RenderReport(&model.CombinedStats{SolvedSummary: tc.args})
			require.NoError(t, err)

			assert.Equal(t, tc.expect, tableRows(t, report.HTML, 0))
			assert.Len(t, report.Summary, len(tc.expect))
		})
	}
}

func TestRenderReportLatestSubmissions(t *testing.T) {
	submissions := []model.SubmissionRecord{
		{Title: "Two Sum", StatusDisplay: "Accepted", Lang: "golang", Timestamp: "1715000000"},
		{Title: "<b>Bold</b> & Co", StatusDisplay: "Wrong Answer", Lang: "c++", Timestamp: "1714000000"},
		{Title: "Two Sum", StatusDisplay: "Accepted", Lang: "golang", Timestamp: "1713000000"},
	}

	report, err := RenderReport(&model.CombinedStats{
		LatestSubmissions: model.LatestSubmissions{Submission: submissions},
	})
	require.NoError(t, err)

	rows := tableRows(t, report.HTML, 1)
	require.Len(t, rows, len(submissions))
	for i, s := range submissions {
		assert.Equal(t, []string{s.Title, s.StatusDisplay, s.Lang, s.Timestamp}, rows[i])
	}

	assert.Contains(t, report.HTML, "<td><b>Bold</b> & Co</td>", "values are embedded verbatim")
}

func TestRenderReportLayout(t *testing.T) {
	report, err := RenderReport(&model.CombinedStats{})
	require.NoError(t, err)

	assert.Contains(t, report.HTML, "<h2>Leetcode Status Report</h2>")
	assert.Contains(t, report.HTML, "<h3>Solved Summary</h3>")
	assert.Contains(t, report.HTML, "<h3>Latest Submissions</h3>")
	assert.Less(t, strings.Index(report.HTML, "Solved Summary"), strings.Index(report.HTML, "Latest Submissions"))
	assert.Empty(t, tableRows(t, report.HTML, 0))
	assert.Empty(t, tableRows(t, report.HTML, 1))
}
