package dashboard

import (
	"context"
	"sync"

	"golang.org/x/text/message"

	"smartagri/internal/domain/entity"
	"smartagri/internal/live"
	"smartagri/pkg/logger"
)

// Controller keeps one Aggregate fed with the live queries of the current
// identity.
type Controller struct {
	ctx    context.Context
	source live.Source
	agg    *Aggregate

	mu     sync.Mutex
	subs   live.Group
	closed bool
}

// NewController returns a controller whose subscriptions live at most as long
// as ctx.
func NewController(ctx context.Context, source live.Source) *Controller {
	return &Controller{
		ctx:    ctx,
		source: source,
		agg:    NewAggregate(),
	}
}

func (c *Controller) Aggregate() *Aggregate {
	return c.agg
}

// IdentityChanged tears down every subscription of the previous identity and
// only then opens the ones for identity. Passing nil signs the dashboard out.
func (c *Controller) IdentityChanged(identity *entity.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.subs.CancelAll()

	queries := QueriesFor(identity)
	gen := c.agg.Reset(identity, CriticalSection(identity))

	for _, q := range queries {
		sub, err := c.open(gen, q)
		if err != nil {
			logger.Error("Failed to subscribe to %s: %v", q.Query, err)
			continue
		}
		c.subs.Add(sub)
	}
}

func (c *Controller) open(gen uint64, q SectionQuery) (*live.Subscription, error) {
	switch q.Section {
	case SectionListings:
		return live.Subscribe(c.ctx, c.source, q.Query, values(entity.DecodeCropListing), func(v []entity.CropListing) {
			c.agg.ApplyListings(gen, v)
		})
	case SectionEquipment:
		return live.Subscribe(c.ctx, c.source, q.Query, values(entity.DecodeEquipmentListing), func(v []entity.EquipmentListing) {
			c.agg.ApplyEquipment(gen, v)
		})
	case SectionProfile:
		return live.Subscribe(c.ctx, c.source, q.Query, values(entity.DecodeExpertProfile), func(v []entity.ExpertProfile) {
			var profile *entity.ExpertProfile
			if len(v) > 0 {
				profile = &v[0]
			}
			c.agg.ApplyProfile(gen, profile)
		})
	default:
		return live.Subscribe(c.ctx, c.source, q.Query, values(entity.DecodeBooking), func(v []entity.Booking) {
			c.agg.ApplyBookings(gen, v)
		})
	}
}

// View renders the current state in the language of p.
func (c *Controller) View(p *message.Printer) View {
	vm := c.agg.Snapshot()
	return Present(vm.Identity, vm, p)
}

// Close cancels every subscription. Later identity changes are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.subs.CancelAll()
}

// SectionQuery binds a live query to the section it feeds.
type SectionQuery struct {
	Section Section
	Query   live.Query
}

// QueriesFor lists the live queries a dashboard opens for identity. Every
// query is scoped to the identity's own uid.
func QueriesFor(identity *entity.Identity) []SectionQuery {
	if identity == nil {
		return nil
	}

	uid := identity.ID
	switch identity.Role {
	case entity.RoleFarmer:
		return []SectionQuery{
			{SectionListings, live.Query{Collection: entity.CollectionMarket}.Where(entity.OwnerField, uid)},
			{SectionBookings, live.Query{Collection: entity.CollectionBookings}.Where("userId", uid)},
		}
	case entity.RoleVendor:
		return []SectionQuery{
			{SectionEquipment, live.Query{Collection: entity.CollectionVendors}.Where(entity.OwnerField, uid)},
		}
	case entity.RoleExpert:
		return []SectionQuery{
			{SectionProfile, live.Query{Collection: entity.CollectionExperts}.Where(entity.OwnerField, uid)},
			{SectionBookings, live.Query{Collection: entity.CollectionBookings}.Where("expertUserId", uid)},
		}
	case entity.RoleNone:
		return nil
	}
	return nil
}

// CriticalSection is the section whose first snapshot ends Loading.
func CriticalSection(identity *entity.Identity) Section {
	if identity == nil {
		return SectionNone
	}

	switch identity.Role {
	case entity.RoleFarmer:
		return SectionListings
	case entity.RoleVendor:
		return SectionEquipment
	case entity.RoleExpert:
		return SectionProfile
	case entity.RoleNone:
		return SectionNone
	}
	return SectionNone
}

func values[T any](decode func(string, map[string]interface{}) (*T, error)) live.Decoder[T] {
	return func(id string, data map[string]interface{}) (T, error) {
		v, err := decode(id, data)
		if err != nil {
			var zero T
			return zero, err
		}
		return *v, nil
	}
}
