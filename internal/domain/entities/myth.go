package entities

// Myth pairs a common health misconception with the supporting fact.
type Myth struct {
	ID       int64  `json:"id"`
	Myth     string `json:"myth"`
	Fact     string `json:"fact"`
	Category string `json:"category"`
	Source   string `json:"source"`
}
