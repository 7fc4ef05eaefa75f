package usecase

import (
	"context"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/apperror"
	"health-research-cms/pkg/validation"
)

type teamMemberUsecase struct {
	memberRepo domain.TeamMemberRepository
}

func NewTeamMemberUsecase(memberRepo domain.TeamMemberRepository) domain.TeamMemberUsecase {
	return &teamMemberUsecase{memberRepo: memberRepo}
}

func validateMember(member *domain.TeamMember) error {
	if member.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if member.Position == "" {
		return apperror.BadRequest("Position is required")
	}
	if member.Email != "" && !validation.ValidEmail(member.Email) {
		return apperror.BadRequest("Invalid email address")
	}
	return nil
}

func (u *teamMemberUsecase) CreateMember(ctx context.Context, member *domain.TeamMember) error {
	if err := validateMember(member); err != nil {
		return err
	}
	return u.memberRepo.Create(ctx, member)
}

func (u *teamMemberUsecase) GetMember(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return u.memberRepo.GetByID(ctx, id)
}

func (u *teamMemberUsecase) ListMembers(ctx context.Context) ([]domain.TeamMember, error) {
	return u.memberRepo.Fetch(ctx)
}

func (u *teamMemberUsecase) UpdateMember(ctx context.Context, member *domain.TeamMember) error {
	if err := validateMember(member); err != nil {
		return err
	}
	return u.memberRepo.Update(ctx, member)
}

func (u *teamMemberUsecase) DeleteMember(ctx context.Context, id int64) error {
	return u.memberRepo.Delete(ctx, id)
}
