package domain

import (
	"context"
	"time"
)

// Event modes and statuses
const (
	EventModeInPerson = "in-person"
	EventModeOnline   = "online"
	EventModeHybrid   = "hybrid"

	EventStatusUpcoming   = "upcoming"
	EventStatusInProgress = "in-progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

type Event struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Mode        string      `json:"mode"`
	EventStatus string      `json:"eventStatus"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	Location    string      `json:"location"`
	ImageID     *int64      `json:"imageId,omitempty"`
	Image       *StoredFile `json:"image,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	Fetch(ctx context.Context) ([]Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

type EventUsecase interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
	UpdateEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id int64) error
}
