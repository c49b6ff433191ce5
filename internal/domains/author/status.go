package author

// Status is the approval state of an author. Every author starts out
// Pending; an admin moves it to Approved or Disapproved. Transitions
// are unconditional and idempotent, so re-approving an approved
// author is not an error.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusApproved    Status = "APPROVED"
	StatusDisapproved Status = "DISAPPROVED"
)

// IsValid reports whether s is one of the known states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	}
	return false
}

// ValidTarget reports whether s may be the target of an admin
// transition. Pending is the initial state only; it can never be
// re-entered. Every transition entry point shares this check.
func (s Status) ValidTarget() bool {
	return s == StatusApproved || s == StatusDisapproved
}

// CanPublish reports whether an author in this state may create
// articles. Checked at article-creation time; existing articles are
// kept when an author is later disapproved.
func (s Status) CanPublish() bool {
	return s == StatusApproved
}
