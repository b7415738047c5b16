package pagetext

// Result holds the readable content extracted from a single page.
type Result struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	WordCount int    `json:"word_count"`
}
