package entity

import "time"

// Status is the review state of a KYC submission.
//
// The transition graph is deliberately unrestricted: an admin may move a
// submission between any two states, including back to pending. No state
// is terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// KycSubmission is one identity-verification request. A user may submit
// more than once; each submit inserts a new row rather than replacing
// the previous one.
type KycSubmission struct {
	ID     string
	UserID string
	Status Status

	// Personal fields, free text, presence-checked only.
	FullName string
	Email    string
	Phone    string
	Address  string
	IDNumber string

	// Blob references for the uploaded documents.
	FaceImage  string
	IDDocument string

	// Present in the read model but never written by any workflow.
	RejectionReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// KycSummary is the trimmed projection returned to reviewers, with the
// owning account joined in.
type KycSummary struct {
	ID             string
	FullName       string
	Email          string
	Phone          string
	Status         Status
	FaceImage      string
	IDDocument     string
	SubmittedAt    time.Time
	ApplicantName  string
	ApplicantEmail string
}
