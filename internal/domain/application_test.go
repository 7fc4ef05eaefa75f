package domain_test

import (
	"testing"

	"health-research-cms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestVacancyKey(t *testing.T) {
	t.Run("prefers the numeric id", func(t *testing.T) {
		app := domain.Application{VacancyID: ptr(7), VacancyTitle: "Data Analyst"}
		key, ok := app.VacancyKey()
		assert.True(t, ok)
		assert.Equal(t, "id:7", key)
	})

	t.Run("falls back to the denormalized title", func(t *testing.T) {
		app := domain.Application{VacancyTitle: "Data Analyst"}
		key, ok := app.VacancyKey()
		assert.True(t, ok)
		assert.Equal(t, "title:Data Analyst", key)
	})

	t.Run("keyless application is excluded", func(t *testing.T) {
		app := domain.Application{}
		_, ok := app.VacancyKey()
		assert.False(t, ok)
	})
}

func TestCanApply(t *testing.T) {
	vacancy := &domain.Vacancy{ID: 2, Title: "Lab Technician"}

	t.Run("first application is allowed", func(t *testing.T) {
		result := domain.CanApply(vacancy, nil)
		assert.True(t, result.Allowed)
		assert.Empty(t, result.Reason)
	})

	t.Run("duplicate by id is rejected", func(t *testing.T) {
		existing := []domain.Application{{VacancyID: ptr(2)}}
		result := domain.CanApply(vacancy, existing)
		assert.False(t, result.Allowed)
		assert.Equal(t, domain.ReasonAlreadyApplied, result.Reason)
	})

	t.Run("duplicate by title survives vacancy deletion", func(t *testing.T) {
		// The original vacancy row is gone; only the title remains.
		existing := []domain.Application{{VacancyTitle: "Lab Technician"}}
		result := domain.CanApply(vacancy, existing)
		assert.False(t, result.Allowed)
		assert.Equal(t, domain.ReasonAlreadyApplied, result.Reason)
	})

	t.Run("duplicate wins over the ceiling", func(t *testing.T) {
		existing := []domain.Application{
			{VacancyID: ptr(2)},
			{VacancyID: ptr(3)},
			{VacancyID: ptr(4)},
		}
		result := domain.CanApply(vacancy, existing)
		assert.False(t, result.Allowed)
		assert.Equal(t, domain.ReasonAlreadyApplied, result.Reason)
	})

	t.Run("three distinct vacancies hit the ceiling", func(t *testing.T) {
		existing := []domain.Application{
			{VacancyID: ptr(5)},
			{VacancyID: ptr(6)},
			{VacancyID: ptr(7)},
		}
		result := domain.CanApply(vacancy, existing)
		assert.False(t, result.Allowed)
		assert.Equal(t, domain.ReasonLimitReached, result.Reason)
	})

	t.Run("repeat applications to the same vacancy count once", func(t *testing.T) {
		// Two records referencing vacancy 5: one distinct key.
		existing := []domain.Application{
			{VacancyID: ptr(5)},
			{VacancyTitle: "Nurse"},
			{VacancyID: ptr(5), VacancyTitle: "Nurse"},
		}
		result := domain.CanApply(vacancy, existing)
		assert.True(t, result.Allowed)
	})

	t.Run("keyless records do not count toward the ceiling", func(t *testing.T) {
		existing := []domain.Application{
			{VacancyID: ptr(5)},
			{VacancyID: ptr(6)},
			{}, // lost both id and title
		}
		result := domain.CanApply(vacancy, existing)
		assert.True(t, result.Allowed)
	})
}

// Walks the submission sequence for one candidate: apply to vacancy 1,
// retry vacancy 1, then vacancies 2, 3, and 4.
func TestCanApplySequence(t *testing.T) {
	vacancies := map[int64]*domain.Vacancy{
		1: {ID: 1, Title: "Researcher"},
		2: {ID: 2, Title: "Data Analyst"},
		3: {ID: 3, Title: "Field Officer"},
		4: {ID: 4, Title: "Accountant"},
	}
	var existing []domain.Application

	apply := func(id int64) domain.EligibilityResult {
		result := domain.CanApply(vacancies[id], existing)
		if result.Allowed {
			existing = append(existing, domain.Application{
				VacancyID:    ptr(id),
				VacancyTitle: vacancies[id].Title,
			})
		}
		return result
	}

	assert.True(t, apply(1).Allowed)
	assert.Equal(t, domain.ReasonAlreadyApplied, apply(1).Reason)
	assert.True(t, apply(2).Allowed)
	assert.True(t, apply(3).Allowed)
	assert.Equal(t, domain.ReasonLimitReached, apply(4).Reason)
}

func TestCountPassed(t *testing.T) {
	apps := []domain.Application{
		{Qualification: domain.QualificationPass},
		{Qualification: domain.QualificationFail},
		{Qualification: domain.QualificationPass},
		{Qualification: domain.QualificationReserve},
		{Qualification: domain.QualificationNotAssessed},
	}
	assert.Equal(t, 2, domain.CountPassed(apps))
	assert.Equal(t, 0, domain.CountPassed(nil))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "senior-data-analyst", domain.Slugify("Senior Data Analyst"))
	assert.Equal(t, "qa-engineer", domain.Slugify("  QA // Engineer!  "))
	assert.Equal(t, "a-b", domain.Slugify("a -- b"))
	assert.Equal(t, "", domain.Slugify("!!!"))
}
