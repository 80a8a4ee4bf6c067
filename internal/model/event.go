package model

// NotifierEvent is the Step Functions payload handed to the notifier: the fetcher's
// response nested under lambda_output.value, plus a report label.
type NotifierEvent struct {
	YearDateMonth string `json:"yearDateMonth"`
	LambdaOutput  struct {
		Value struct {
			// Body is the JSON-encoded CombinedStats, still as a string.
			Body string `json:"body"`
		} `json:"value"`
	} `json:"lambda_output"`
}
