package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the shared implementation behind the typed constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewUserLogin is emitted after a successful credential login.
func NewUserLogin(userId uuid.UUID, device string) Event {
	return BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id": userId,
			"device":  device,
			"time":    time.Now().Format(time.RFC822),
		},
		OccurredAt: time.Now(),
	}
}

// NewOnboardingCompleted is emitted when a candidate reaches the terminal
// onboarding step.
func NewOnboardingCompleted(userId uuid.UUID) Event {
	return BaseEvent{
		Type: "ONBOARDING_COMPLETED",
		Data: map[string]interface{}{
			"user_id": userId,
		},
		OccurredAt: time.Now(),
	}
}

// NewResumeUploaded is emitted when a candidate stores a new resume.
func NewResumeUploaded(userId uuid.UUID, filename string) Event {
	return BaseEvent{
		Type: "RESUME_UPLOADED",
		Data: map[string]interface{}{
			"user_id":  userId,
			"filename": filename,
		},
		OccurredAt: time.Now(),
	}
}

// NewProfileSaved is emitted after a full aggregate save, successful or
// partial.
func NewProfileSaved(userId uuid.UUID, ok bool) Event {
	return BaseEvent{
		Type: "PROFILE_SAVED",
		Data: map[string]interface{}{
			"user_id": userId,
			"ok":      ok,
		},
		OccurredAt: time.Now(),
	}
}

// NewJobPosted is emitted when a posting is created and queued for
// embedding.
func NewJobPosted(jobId uuid.UUID, title string) Event {
	return BaseEvent{
		Type: "JOB_POSTED",
		Data: map[string]interface{}{
			"job_id": jobId,
			"title":  title,
		},
		OccurredAt: time.Now(),
	}
}
