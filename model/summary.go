package model

// Summary aggregates test case counts over a sequence of records.
type Summary struct {
	Count       int `json:"count" yaml:"count"`
	TotalPassed int `json:"total_passed" yaml:"total_passed"`
	TotalFailed int `json:"total_failed" yaml:"total_failed"`
	// Rounded percentage of passed test cases, 0 when there are none
	PassRate int `json:"pass_rate" yaml:"pass_rate"`
}
