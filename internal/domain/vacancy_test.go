package domain_test

import (
	"testing"
	"time"

	"health-research-cms/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("open vacancy with future deadline stays open", func(t *testing.T) {
		deadline := now.Add(24 * time.Hour)
		v := domain.Vacancy{RequiredCandidates: 2, PassedCount: 0, Deadline: &deadline}
		assert.Equal(t, domain.VacancyStatusOpened, v.EffectiveStatus(now))
	})

	t.Run("closes exactly at the deadline instant", func(t *testing.T) {
		deadline := now
		v := domain.Vacancy{RequiredCandidates: 2, Deadline: &deadline}
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now))
	})

	t.Run("closes after the deadline", func(t *testing.T) {
		deadline := now.Add(-time.Second)
		v := domain.Vacancy{RequiredCandidates: 2, Deadline: &deadline}
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now))
	})

	t.Run("no deadline never closes on time alone", func(t *testing.T) {
		v := domain.Vacancy{RequiredCandidates: 2, PassedCount: 1}
		assert.Equal(t, domain.VacancyStatusOpened, v.EffectiveStatus(now))
	})

	t.Run("pass quota closes even with a future deadline", func(t *testing.T) {
		deadline := now.Add(30 * 24 * time.Hour)
		v := domain.Vacancy{RequiredCandidates: 2, PassedCount: 2, Deadline: &deadline}
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now))
	})

	t.Run("pass count above quota closes", func(t *testing.T) {
		v := domain.Vacancy{RequiredCandidates: 1, PassedCount: 3}
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now))
	})

	t.Run("zero required candidates never closes on passes", func(t *testing.T) {
		v := domain.Vacancy{RequiredCandidates: 0, PassedCount: 5}
		assert.Equal(t, domain.VacancyStatusOpened, v.EffectiveStatus(now))
	})

	t.Run("closed never reopens as time advances", func(t *testing.T) {
		deadline := now.Add(-time.Hour)
		v := domain.Vacancy{RequiredCandidates: 2, Deadline: &deadline}
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now))
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now.Add(time.Hour)))
		assert.Equal(t, domain.VacancyStatusClosed, v.EffectiveStatus(now.Add(365*24*time.Hour)))
	})
}

func TestComputeStatusCorrections(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	vacancies := []domain.Vacancy{
		{ID: 1, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1, Deadline: &past},   // drifted, should close
		{ID: 2, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1, Deadline: &future}, // in sync
		{ID: 3, VacancyStatus: domain.VacancyStatusClosed, RequiredCandidates: 2, Deadline: &future}, // drifted, should reopen
		{ID: 4, VacancyStatus: domain.VacancyStatusClosed, RequiredCandidates: 1, PassedCount: 1},    // in sync
	}

	t.Run("returns one correction per drifted vacancy", func(t *testing.T) {
		corrections := domain.ComputeStatusCorrections(vacancies, now)
		assert.Len(t, corrections, 2)
		assert.Equal(t, domain.StatusCorrection{VacancyID: 1, NewStatus: domain.VacancyStatusClosed}, corrections[0])
		assert.Equal(t, domain.StatusCorrection{VacancyID: 3, NewStatus: domain.VacancyStatusOpened}, corrections[1])
	})

	t.Run("applying corrections makes a second pass empty", func(t *testing.T) {
		corrected := make([]domain.Vacancy, len(vacancies))
		copy(corrected, vacancies)
		for _, c := range domain.ComputeStatusCorrections(corrected, now) {
			for i := range corrected {
				if corrected[i].ID == c.VacancyID {
					corrected[i].VacancyStatus = c.NewStatus
				}
			}
		}
		assert.Empty(t, domain.ComputeStatusCorrections(corrected, now))
	})

	t.Run("no vacancies yields no corrections", func(t *testing.T) {
		assert.Empty(t, domain.ComputeStatusCorrections(nil, now))
	})
}
