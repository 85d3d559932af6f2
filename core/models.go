package core

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID
	AzureID     *string
	Name        string
	Description *string
}

type User struct {
	ID      uuid.UUID
	AzureID *string
	Name    *string
	Email   *string
	TeamID  *uuid.UUID
}

type Project struct {
	ID          uuid.UUID
	AzureID     *string
	Name        *string
	Description *string
	URL         *string
	Template    *string
	TeamID      *uuid.UUID
}

type WorkItem struct {
	ID            uuid.UUID
	AzureID       *string
	Title         string
	Type          string
	State         string
	ProjectID     uuid.UUID
	AssignedToID  *uuid.UUID
	CreatedByID   uuid.UUID
	CreatedDate   time.Time
	ChangedDate   *time.Time
	Priority      *int
	Severity      *string
	Description   *string
	AreaPath      *string
	IterationPath *string
	ParentID      *uuid.UUID
	Tags          []string
	URL           string
}

type Notification struct {
	ID           int
	Subject      *string
	SenderID     uuid.UUID
	ReceiverID   uuid.UUID
	Message      *string
	CreationTime time.Time
	Closed       bool
}

// WorkItemDraft carries the create payload before any reference has been
// resolved. Cross-entity references are external (azure) ids, not internal ones.
type WorkItemDraft struct {
	AzureID       *string
	Title         string
	Type          string
	State         string
	ProjectRef    string
	AssignedToRef *string
	CreatedByRef  string
	Priority      *int
	Severity      *string
	Description   *string
	AreaPath      *string
	IterationPath *string
	ParentRef     *string
	Tags          []string
	URL           string
}

// ListOptions is offset pagination. Values below 1 are clamped to the
// defaults by the storage layer.
type ListOptions struct {
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Normalize returns the options with out-of-range values replaced by defaults.
func (o ListOptions) Normalize() ListOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	return o
}

type UserFilter struct {
	Name  string
	Email string
}

type TeamFilter struct {
	Name string
}

type ProjectFilter struct {
	Name string
}

type WorkItemFilter struct {
	Title string
	State string
}

type NotificationFilter struct {
	Subject string
}

type UserPatch struct {
	Name  *string
	Email *string
}
