package tui

// frameMsg advances a deceleration by one frame.
type frameMsg struct{}

// statusExpiredMsg re-renders once a status message has timed out.
type statusExpiredMsg struct{}
