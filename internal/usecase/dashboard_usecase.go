package usecase

import (
	"context"

	"golang.org/x/text/message"

	"smartagri/internal/dashboard"
	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
)

// DashboardUseCase builds a dashboard from one-shot reads, for clients that
// do not hold a live connection. It goes through the same aggregate and
// presenter as the live dashboard.
type DashboardUseCase struct {
	cropRepo      repository.CropRepository
	equipmentRepo repository.EquipmentRepository
	expertRepo    repository.ExpertRepository
	bookingRepo   repository.BookingRepository
}

func NewDashboardUseCase(
	cropRepo repository.CropRepository,
	equipmentRepo repository.EquipmentRepository,
	expertRepo repository.ExpertRepository,
	bookingRepo repository.BookingRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		cropRepo:      cropRepo,
		equipmentRepo: equipmentRepo,
		expertRepo:    expertRepo,
		bookingRepo:   bookingRepo,
	}
}

func (uc *DashboardUseCase) Build(ctx context.Context, identity *entity.Identity, p *message.Printer) (dashboard.View, error) {
	agg := dashboard.NewAggregate()
	gen := agg.Reset(identity, dashboard.CriticalSection(identity))

	for _, q := range dashboard.QueriesFor(identity) {
		if err := uc.load(ctx, agg, gen, identity, q.Section); err != nil {
			return dashboard.View{}, err
		}
	}

	vm := agg.Snapshot()
	return dashboard.Present(vm.Identity, vm, p), nil
}

func (uc *DashboardUseCase) load(ctx context.Context, agg *dashboard.Aggregate, gen uint64, identity *entity.Identity, section dashboard.Section) error {
	uid := identity.ID
	switch section {
	case dashboard.SectionListings:
		crops, err := uc.cropRepo.ListByOwner(ctx, uid)
		if err != nil {
			return err
		}
		agg.ApplyListings(gen, deref(crops))
	case dashboard.SectionEquipment:
		items, err := uc.equipmentRepo.ListByOwner(ctx, uid)
		if err != nil {
			return err
		}
		agg.ApplyEquipment(gen, deref(items))
	case dashboard.SectionProfile:
		profile, err := uc.expertRepo.GetByOwner(ctx, uid)
		if err != nil {
			return err
		}
		agg.ApplyProfile(gen, profile)
	case dashboard.SectionBookings:
		bookings, err := uc.bookings(ctx, identity)
		if err != nil {
			return err
		}
		agg.ApplyBookings(gen, deref(bookings))
	case dashboard.SectionNone:
	}
	return nil
}

func (uc *DashboardUseCase) bookings(ctx context.Context, identity *entity.Identity) ([]*entity.Booking, error) {
	if identity.Role == entity.RoleExpert {
		return uc.bookingRepo.ListByExpertOwner(ctx, identity.ID)
	}
	return uc.bookingRepo.ListByRequester(ctx, identity.ID)
}

func deref[T any](ptrs []*T) []T {
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
