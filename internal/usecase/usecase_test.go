package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/internal/usecase"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.Vacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Fetch(ctx context.Context) ([]domain.Vacancy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vacancy), args.Error(1)
}
func (m *MockVacancyRepo) Update(ctx context.Context, vacancy *domain.Vacancy) error {
	return m.Called(ctx, vacancy).Error(0)
}
func (m *MockVacancyRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockVacancyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByEmail(ctx context.Context, email string) ([]domain.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Fetch(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateQualification(ctx context.Context, id int64, qualification string) error {
	return m.Called(ctx, id, qualification).Error(0)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockImpactRepo struct {
	mock.Mock
}

func (m *MockImpactRepo) Create(ctx context.Context, impact *domain.Impact) error {
	return m.Called(ctx, impact).Error(0)
}
func (m *MockImpactRepo) GetByID(ctx context.Context, id int64) (*domain.Impact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Impact), args.Error(1)
}
func (m *MockImpactRepo) Fetch(ctx context.Context) ([]domain.Impact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Impact), args.Error(1)
}
func (m *MockImpactRepo) Update(ctx context.Context, impact *domain.Impact) error {
	return m.Called(ctx, impact).Error(0)
}
func (m *MockImpactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func ptr(v int64) *int64 { return &v }

func newApplication(vacancyID int64) *domain.Application {
	return &domain.Application{
		Name:        "Abebe Bikila",
		Email:       "a@x.com",
		PhoneNumber: "+251912345678",
		VacancyID:   ptr(vacancyID),
	}
}

func openVacancy(id int64, title string) *domain.Vacancy {
	deadline := time.Now().Add(7 * 24 * time.Hour)
	return &domain.Vacancy{ID: id, Title: title, RequiredCandidates: 2, Deadline: &deadline}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid first application and denormalizes the title", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(1)).Return(openVacancy(1, "Researcher"), nil)
		appRepo.On("GetByEmail", ctx, "a@x.com").Return([]domain.Application{}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app := newApplication(1)
		err := uc.Apply(ctx, app)

		assert.NoError(t, err)
		assert.Equal(t, "Researcher", app.VacancyTitle)
		assert.Equal(t, domain.QualificationNotAssessed, app.Qualification)
		assert.False(t, app.AppliedAt.IsZero())
		appRepo.AssertCalled(t, "Create", ctx, app)
	})

	t.Run("rejects an application to a closed vacancy", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		deadline := time.Now().Add(-time.Hour)
		vacancyRepo.On("GetByID", ctx, int64(1)).Return(
			&domain.Vacancy{ID: 1, Title: "Researcher", RequiredCandidates: 2, Deadline: &deadline}, nil)

		err := uc.Apply(ctx, newApplication(1))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ReasonVacancyClosed, appErr.Message)
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects a duplicate application", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(1)).Return(openVacancy(1, "Researcher"), nil)
		appRepo.On("GetByEmail", ctx, "a@x.com").Return([]domain.Application{
			{Email: "a@x.com", VacancyID: ptr(1), VacancyTitle: "Researcher"},
		}, nil)

		err := uc.Apply(ctx, newApplication(1))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ReasonAlreadyApplied, appErr.Message)
	})

	t.Run("rejects the fourth distinct vacancy", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(4)).Return(openVacancy(4, "Accountant"), nil)
		appRepo.On("GetByEmail", ctx, "a@x.com").Return([]domain.Application{
			{VacancyID: ptr(1)}, {VacancyID: ptr(2)}, {VacancyID: ptr(3)},
		}, nil)

		err := uc.Apply(ctx, newApplication(4))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ReasonLimitReached, appErr.Message)
	})

	t.Run("maps the unique constraint to the duplicate message on a race", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(1)).Return(openVacancy(1, "Researcher"), nil)
		appRepo.On("GetByEmail", ctx, "a@x.com").Return([]domain.Application{}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		err := uc.Apply(ctx, newApplication(1))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ReasonAlreadyApplied, appErr.Message)
	})

	t.Run("normalizes email case before the eligibility check", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(1)).Return(openVacancy(1, "Researcher"), nil)
		appRepo.On("GetByEmail", ctx, "a@x.com").Return([]domain.Application{}, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)

		app := newApplication(1)
		app.Email = "  A@X.com "
		err := uc.Apply(ctx, app)

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", app.Email)
	})

	t.Run("rejects an invalid phone number", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		app := newApplication(1)
		app.PhoneNumber = "12345678"
		err := uc.Apply(ctx, app)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		vacancyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects a missing vacancy reference", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		app := newApplication(1)
		app.VacancyID = nil
		err := uc.Apply(ctx, app)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("answers 404 for an unknown vacancy", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, vacancyRepo, newValidator())

		vacancyRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.Apply(ctx, newApplication(99))

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestAssessApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a known qualification value", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), newValidator())

		appRepo.On("UpdateQualification", ctx, int64(1), domain.QualificationPass).Return(nil)
		assert.NoError(t, uc.AssessApplication(ctx, 1, domain.QualificationPass))
	})

	t.Run("rejects an unknown qualification value", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockVacancyRepo), newValidator())

		err := uc.AssessApplication(ctx, 1, "maybe")
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateQualification", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReconcileStatuses(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	t.Run("persists corrections for drifted vacancies only", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("Fetch", ctx).Return([]domain.Vacancy{
			{ID: 1, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1, Deadline: &past},
			{ID: 2, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1},
		}, nil)
		vacancyRepo.On("UpdateStatus", ctx, int64(1), domain.VacancyStatusClosed).Return(nil)

		applied, err := uc.ReconcileStatuses(ctx, now)

		assert.NoError(t, err)
		assert.Len(t, applied, 1)
		assert.Equal(t, int64(1), applied[0].VacancyID)
		vacancyRepo.AssertNotCalled(t, "UpdateStatus", ctx, int64(2), mock.Anything)
	})

	t.Run("a failed write is skipped, the rest still land", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("Fetch", ctx).Return([]domain.Vacancy{
			{ID: 1, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1, Deadline: &past},
			{ID: 2, VacancyStatus: domain.VacancyStatusOpened, RequiredCandidates: 1, PassedCount: 1},
		}, nil)
		vacancyRepo.On("UpdateStatus", ctx, int64(1), domain.VacancyStatusClosed).Return(errors.New("connection reset"))
		vacancyRepo.On("UpdateStatus", ctx, int64(2), domain.VacancyStatusClosed).Return(nil)

		applied, err := uc.ReconcileStatuses(ctx, now)

		assert.NoError(t, err)
		assert.Len(t, applied, 1)
		assert.Equal(t, int64(2), applied[0].VacancyID)
	})

	t.Run("fetch failure aborts the sweep", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("Fetch", ctx).Return(nil, errors.New("connection reset"))

		applied, err := uc.ReconcileStatuses(ctx, now)
		assert.Error(t, err)
		assert.Nil(t, applied)
	})
}

func TestCreateVacancyDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("fills slug, status, and headcount defaults", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil)

		v := &domain.Vacancy{Title: "Senior Data Analyst"}
		assert.NoError(t, uc.CreateVacancy(ctx, v))
		assert.Equal(t, "senior-data-analyst", v.Slug)
		assert.Equal(t, domain.VacancyStatusOpened, v.VacancyStatus)
		assert.Equal(t, 1, v.RequiredCandidates)
		assert.False(t, v.PostedAt.IsZero())
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		uc := usecase.NewVacancyUsecase(new(MockVacancyRepo))
		assert.Error(t, uc.CreateVacancy(ctx, &domain.Vacancy{}))
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		err := uc.CreateVacancy(ctx, &domain.Vacancy{Title: "Analyst", VacancyStatus: "banana"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		vacancyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateVacancy(t *testing.T) {
	ctx := context.Background()
	postedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	stored := func() *domain.Vacancy {
		return &domain.Vacancy{
			ID:                 9,
			Title:              "Epidemiologist",
			Slug:               "epidemiologist",
			RequiredCandidates: 2,
			VacancyStatus:      domain.VacancyStatusClosed,
			PostedAt:           postedAt,
		}
	}

	t.Run("keeps stored status and posted date when omitted", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("GetByID", ctx, int64(9)).Return(stored(), nil)
		vacancyRepo.On("Update", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil)

		v := &domain.Vacancy{ID: 9, Title: "Epidemiologist", RequiredCandidates: 2}
		assert.NoError(t, uc.UpdateVacancy(ctx, v))
		assert.Equal(t, domain.VacancyStatusClosed, v.VacancyStatus)
		assert.Equal(t, postedAt, v.PostedAt)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("GetByID", ctx, int64(9)).Return(stored(), nil)

		v := &domain.Vacancy{ID: 9, Title: "Epidemiologist", RequiredCandidates: 2, VacancyStatus: "banana"}
		err := uc.UpdateVacancy(ctx, v)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		vacancyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("accepts an explicit status change", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("GetByID", ctx, int64(9)).Return(stored(), nil)
		vacancyRepo.On("Update", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil)

		v := &domain.Vacancy{
			ID: 9, Title: "Epidemiologist", RequiredCandidates: 2,
			VacancyStatus: domain.VacancyStatusOpened,
		}
		assert.NoError(t, uc.UpdateVacancy(ctx, v))
		assert.Equal(t, domain.VacancyStatusOpened, v.VacancyStatus)
	})

	t.Run("unknown vacancy surfaces not found", func(t *testing.T) {
		vacancyRepo := new(MockVacancyRepo)
		uc := usecase.NewVacancyUsecase(vacancyRepo)

		vacancyRepo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)

		v := &domain.Vacancy{ID: 9, Title: "Epidemiologist", RequiredCandidates: 2}
		assert.ErrorIs(t, uc.UpdateVacancy(ctx, v), domain.ErrNotFound)
	})
}

func TestImpacts(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with value and title", func(t *testing.T) {
		impactRepo := new(MockImpactRepo)
		uc := usecase.NewImpactUsecase(impactRepo)

		impactRepo.On("Create", ctx, mock.AnythingOfType("*domain.Impact")).Return(nil)

		impact := &domain.Impact{Value: "120+", Title: "Research Projects"}
		assert.NoError(t, uc.CreateImpact(ctx, impact))
		impactRepo.AssertExpectations(t)
	})

	t.Run("rejects a missing value or title", func(t *testing.T) {
		impactRepo := new(MockImpactRepo)
		uc := usecase.NewImpactUsecase(impactRepo)

		var appErr *apperror.AppError
		err := uc.CreateImpact(ctx, &domain.Impact{Title: "Research Projects"})
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)

		err = uc.UpdateImpact(ctx, &domain.Impact{ID: 1, Value: "120+"})
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)

		impactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		impactRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
