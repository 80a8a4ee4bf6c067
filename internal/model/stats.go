package model

// SolvedSummary is the body of the statistics API's /{username}/solved endpoint,
// reduced to the fields the report reads.
type SolvedSummary struct {
	ACSubmissionNum    []DifficultyCount       `json:"acSubmissionNum"`
	TotalSubmissionNum []DifficultySubmissions `json:"totalSubmissionNum"`
}

type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type DifficultySubmissions struct {
	Difficulty  string `json:"difficulty"`
	Submissions int    `json:"submissions"`
}

type SubmissionRecord struct {
	Title         string `json:"title"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
	Timestamp     string `json:"timestamp"`
}

// LatestSubmissions is the body of the /{username}/acSubmission endpoint.
type LatestSubmissions struct {
	Submission []SubmissionRecord `json:"submission"`
}

type CombinedStats struct {
	SolvedSummary     SolvedSummary     `json:"solvedSummary"`
	LatestSubmissions LatestSubmissions `json:"latestSubmissions"`
}
