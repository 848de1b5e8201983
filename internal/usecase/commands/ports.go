package commands

// BookingRecorder receives booking lifecycle events for metrics.
type BookingRecorder interface {
	BookingCreated()
	BookingDecided(status string)
}

type CommentRecorder interface {
	CommentAdded()
}

type nopRecorder struct{}

func (nopRecorder) BookingCreated()       {}
func (nopRecorder) BookingDecided(string) {}
func (nopRecorder) CommentAdded()         {}

// NopRecorder discards every event.
var NopRecorder = nopRecorder{}
