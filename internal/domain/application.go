package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// Qualification outcomes for an application
const (
	QualificationNotAssessed = "not_assessed"
	QualificationFail        = "fail"
	QualificationPass        = "pass"
	QualificationReserve     = "reserve"
)

// MaxDistinctApplications is the system-wide ceiling on how many
// distinct vacancies a single email address may apply to.
const MaxDistinctApplications = 3

// Rejection messages surfaced to applicants
const (
	ReasonAlreadyApplied = "You have already applied to this job."
	ReasonLimitReached   = "You have reached the limit of 3 job applications."
	ReasonVacancyClosed  = "This vacancy is closed."
)

// Application represents one candidate's submission to one vacancy.
// VacancyTitle is denormalized at submission time so the record survives
// the vacancy being renamed or deleted.
type Application struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Email         string    `json:"email" validate:"required,email"`
	PhoneNumber   string    `json:"phoneNumber" validate:"required,ethiopian_phone"`
	CoverLetter   *string   `json:"coverLetter,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
	Qualification string    `json:"qualification"`
	VacancyID     *int64    `json:"vacancy,omitempty"`
	VacancyTitle  string    `json:"vacancyTitle"`
	ResumeID      *int64    `json:"resume,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for admin list responses
	Resume *StoredFile `json:"resumeFile,omitempty"`
}

// VacancyKey returns the identifier used to count distinct vacancies for
// the application ceiling. The strong numeric id is preferred; the
// denormalized title is the fallback when the relation has been lost.
// ok is false when the application carries neither, in which case it is
// excluded from eligibility counting.
func (a *Application) VacancyKey() (key string, ok bool) {
	if a.VacancyID != nil && *a.VacancyID > 0 {
		return "id:" + strconv.FormatInt(*a.VacancyID, 10), true
	}
	if a.VacancyTitle != "" {
		return "title:" + a.VacancyTitle, true
	}
	return "", false
}

// EligibilityResult is the outcome of the pre-submission check.
type EligibilityResult struct {
	Allowed bool
	Reason  string
}

// CanApply decides whether a new application for `vacancy` may be
// submitted given the candidate's existing applications. Rules are
// evaluated in order and the first failure wins:
//
//  1. an existing application already references this vacancy (by id,
//     or by denormalized title when the id is absent)
//  2. the candidate's applications already span MaxDistinctApplications
//     distinct vacancies
//
// The caller must pass applications fetched fresh at submission time.
func CanApply(vacancy *Vacancy, existing []Application) EligibilityResult {
	idKey := "id:" + strconv.FormatInt(vacancy.ID, 10)
	titleKey := "title:" + vacancy.Title

	for i := range existing {
		key, ok := existing[i].VacancyKey()
		if !ok {
			continue
		}
		if key == idKey || key == titleKey {
			return EligibilityResult{Allowed: false, Reason: ReasonAlreadyApplied}
		}
	}

	distinct := lo.FilterMap(existing, func(app Application, _ int) (string, bool) {
		return app.VacancyKey()
	})
	if len(lo.Uniq(distinct)) >= MaxDistinctApplications {
		return EligibilityResult{Allowed: false, Reason: ReasonLimitReached}
	}

	return EligibilityResult{Allowed: true}
}

// CountPassed returns how many of the given applications passed
// assessment.
func CountPassed(apps []Application) int {
	return lo.CountBy(apps, func(a Application) bool {
		return a.Qualification == QualificationPass
	})
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByEmail(ctx context.Context, email string) ([]Application, error)
	GetByVacancyID(ctx context.Context, vacancyID int64) ([]Application, error)
	Fetch(ctx context.Context) ([]Application, error)
	UpdateQualification(ctx context.Context, id int64, qualification string) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	// Apply runs the eligibility engine against fresh data and creates
	// the application when allowed.
	Apply(ctx context.Context, app *Application) error

	ListApplications(ctx context.Context) ([]Application, error)
	ListByVacancy(ctx context.Context, vacancyID int64) ([]Application, error)
	GetApplicationDetail(ctx context.Context, id int64) (*Application, error)
	AssessApplication(ctx context.Context, id int64, qualification string) error
	DeleteApplication(ctx context.Context, id int64) error
}
