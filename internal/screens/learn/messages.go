package learn

// sessionReadyMsg is sent when the session items have been built and
// learner state has been loaded.
type sessionReadyMsg struct {
	Err error
}

// feedbackDoneMsg is sent when the post-answer feedback period ends.
type feedbackDoneMsg struct{}

// persistDoneMsg is sent when a background event append completes.
type persistDoneMsg struct {
	Err error
}

// sessionFinishedMsg is sent once the end-of-session state has been
// persisted.
type sessionFinishedMsg struct {
	Mastered int
	Studied  int
	Streak   int
}
