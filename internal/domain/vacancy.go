package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// Vacancy status values. VacancyStatus is the persisted field; the
// effective status is recomputed from deadline and pass count and the
// reconciler corrects drift between the two.
const (
	VacancyStatusOpened = "opened"
	VacancyStatusClosed = "closed"
)

type Vacancy struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Location           string     `json:"location"`
	Department         string     `json:"department"`
	JobType            string     `json:"jobType"` // Full-Time / Part-Time / Contract
	Description        string     `json:"description"`
	PostedAt           time.Time  `json:"postedAt"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	RequiredCandidates int        `json:"requiredCandidates"`
	VacancyStatus      string     `json:"vacancyStatus"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Read-side counts joined from applications
	ApplicationCount int `json:"applicationCount"`
	PassedCount      int `json:"passedCount"`
}

// EffectiveStatus computes the open/closed state from business rules,
// independent of the persisted VacancyStatus field.
//
// A vacancy is closed when enough applicants have passed assessment to
// fill the required headcount, or when the deadline has been reached.
// The deadline comparison is inclusive: the vacancy closes exactly at
// the deadline instant. A vacancy with no deadline never closes on time
// alone.
func (v *Vacancy) EffectiveStatus(now time.Time) string {
	if v.RequiredCandidates > 0 && v.PassedCount >= v.RequiredCandidates {
		return VacancyStatusClosed
	}
	if v.Deadline != nil && !v.Deadline.After(now) {
		return VacancyStatusClosed
	}
	return VacancyStatusOpened
}

// StatusCorrection records a divergence between a vacancy's persisted
// status and its effective status at a given instant.
type StatusCorrection struct {
	VacancyID int64
	NewStatus string
}

// ComputeStatusCorrections returns one correction per vacancy whose
// persisted status differs from its effective status at `now`.
// Corrections are independent and order-insensitive; once applied,
// recomputing with the same inputs yields nothing.
func ComputeStatusCorrections(vacancies []Vacancy, now time.Time) []StatusCorrection {
	var corrections []StatusCorrection
	for i := range vacancies {
		effective := vacancies[i].EffectiveStatus(now)
		if vacancies[i].VacancyStatus != effective {
			corrections = append(corrections, StatusCorrection{
				VacancyID: vacancies[i].ID,
				NewStatus: effective,
			})
		}
	}
	return corrections
}

type VacancyRepository interface {
	Create(ctx context.Context, vacancy *Vacancy) error
	GetByID(ctx context.Context, id int64) (*Vacancy, error)
	Fetch(ctx context.Context) ([]Vacancy, error)
	Update(ctx context.Context, vacancy *Vacancy) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type VacancyUsecase interface {
	CreateVacancy(ctx context.Context, vacancy *Vacancy) error
	GetVacancyDetails(ctx context.Context, id int64) (*Vacancy, error)
	ListVacancies(ctx context.Context) ([]Vacancy, error)
	UpdateVacancy(ctx context.Context, vacancy *Vacancy) error
	DeleteVacancy(ctx context.Context, id int64) error

	// ReconcileStatuses corrects persisted statuses that have drifted
	// from their effective values. Returns the corrections applied.
	ReconcileStatuses(ctx context.Context, now time.Time) ([]StatusCorrection, error)
}
