package core

import (
	"context"

	"github.com/google/uuid"
)

// ResolvePolicy states what a missed reference lookup means for the
// operation that carries it.
type ResolvePolicy int

const (
	// ResolveRequired aborts the whole operation when the reference
	// does not resolve.
	ResolveRequired ResolvePolicy = iota
	// ResolveSoft drops the linkage and lets the operation proceed.
	ResolveSoft
)

type TeamPort interface {
	Create(ctx context.Context, team Team, memberRefs []string) (Team, []User, error)
	List(ctx context.Context, filter TeamFilter, opts ListOptions) ([]Team, error)
}

type UserPort interface {
	Create(ctx context.Context, user User) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, filter UserFilter, opts ListOptions) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectPort interface {
	Create(ctx context.Context, project Project) (Project, error)
	List(ctx context.Context, filter ProjectFilter, opts ListOptions) ([]Project, error)
}

type WorkItemPort interface {
	Create(ctx context.Context, draft WorkItemDraft) (WorkItem, error)
	List(ctx context.Context, filter WorkItemFilter, opts ListOptions) ([]WorkItem, error)
}

type NotificationPort interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, filter NotificationFilter, opts ListOptions) ([]Notification, error)
	Close(ctx context.Context, id int) (Notification, error)
}

type TeamDB interface {
	Add(ctx context.Context, team Team, memberRefs []string) (Team, []User, error)
	List(ctx context.Context, filter TeamFilter, opts ListOptions) ([]Team, error)
}

type UserDB interface {
	Add(ctx context.Context, user User) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, filter UserFilter, opts ListOptions) ([]User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectDB interface {
	Add(ctx context.Context, project Project) (Project, error)
	List(ctx context.Context, filter ProjectFilter, opts ListOptions) ([]Project, error)
}

type WorkItemDB interface {
	Add(ctx context.Context, draft WorkItemDraft) (WorkItem, error)
	List(ctx context.Context, filter WorkItemFilter, opts ListOptions) ([]WorkItem, error)
}

type NotificationDB interface {
	Add(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, filter NotificationFilter, opts ListOptions) ([]Notification, error)
	SetClosed(ctx context.Context, id int) (Notification, error)
}
