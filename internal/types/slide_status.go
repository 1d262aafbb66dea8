package types

// SlideStatus tracks how far a slide's content has progressed. It is
// derived from the content itself (see internal/content), never set
// directly by callers.
type SlideStatus string

const (
	StatusDraft            SlideStatus = "draft"
	StatusAiGenerated      SlideStatus = "ai_generated"
	StatusPartialUserInput SlideStatus = "partial_user_input"
	StatusUserCompleted    SlideStatus = "user_completed"
)

func (s SlideStatus) String() string { return string(s) }
