package usecase

import (
	"context"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
)

type ExpertUseCase struct {
	expertRepo repository.ExpertRepository
}

func NewExpertUseCase(expertRepo repository.ExpertRepository) *ExpertUseCase {
	return &ExpertUseCase{
		expertRepo: expertRepo,
	}
}

type RegisterExpertInput struct {
	Name       string
	Specialty  string
	Experience string
	Education  string
	Bio        string
	Phone      string
}

// Register creates the expert profile of identity. An identity has at most
// one profile; the repository enforces it when two registrations race.
func (uc *ExpertUseCase) Register(ctx context.Context, identity entity.Identity, input RegisterExpertInput) (*entity.ExpertProfile, error) {
	if identity.Role != entity.RoleExpert {
		return nil, errors.Forbidden("Only Agricultural Experts can create a consultation profile", nil)
	}

	existing, err := uc.expertRepo.GetByOwner(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Expert profile already exists")
	}

	profile := &entity.ExpertProfile{
		OwnerID:      identity.ID,
		Name:         input.Name,
		Email:        identity.Email,
		Specialty:    input.Specialty,
		Education:    input.Education,
		Experience:   input.Experience,
		Bio:          input.Bio,
		Phone:        input.Phone,
		CallRequests: 0,
	}
	if err := uc.expertRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// List returns experts newest first, matching search against name and
// specialty.
func (uc *ExpertUseCase) List(ctx context.Context, search string) ([]*entity.ExpertProfile, error) {
	experts, err := uc.expertRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.ExpertProfile, 0, len(experts))
	for _, e := range experts {
		if matches(search, e.Name, e.Specialty) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (uc *ExpertUseCase) GetByID(ctx context.Context, id string) (*entity.ExpertProfile, error) {
	return uc.expertRepo.GetByID(ctx, id)
}
