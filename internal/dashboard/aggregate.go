package dashboard

import (
	"sync"

	"smartagri/internal/domain/entity"
)

// Section names one independently updated part of the dashboard.
type Section int

const (
	SectionNone Section = iota
	SectionListings
	SectionEquipment
	SectionProfile
	SectionBookings
)

func (s Section) String() string {
	switch s {
	case SectionListings:
		return "listings"
	case SectionEquipment:
		return "equipment"
	case SectionProfile:
		return "profile"
	case SectionBookings:
		return "bookings"
	case SectionNone:
		return ""
	}
	return ""
}

func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ViewModel is a point-in-time copy of the aggregate.
type ViewModel struct {
	Identity  *entity.Identity
	Listings  []entity.CropListing
	Equipment []entity.EquipmentListing
	Profile   *entity.ExpertProfile
	Bookings  []entity.Booking

	// Loading stays true until the role-critical section has delivered.
	Loading bool

	loaded map[Section]bool
}

// Loaded reports whether section has received at least one snapshot.
func (vm ViewModel) Loaded(section Section) bool {
	return vm.loaded[section]
}

// Aggregate merges the latest snapshot of each section into one view-model.
//
// Every Apply replaces exactly one section. Deliveries tagged with a
// generation older than the last Reset are dropped, so a slow subscription
// of a previous identity can never write into the current view.
type Aggregate struct {
	// notifyMu serializes change plus notification so listeners observe
	// snapshots in the order they were accepted.
	notifyMu sync.Mutex

	mu         sync.Mutex
	generation uint64
	critical   Section
	identity   *entity.Identity
	listings   []entity.CropListing
	equipment  []entity.EquipmentListing
	profile    *entity.ExpertProfile
	bookings   []entity.Booking
	loaded     map[Section]bool

	listeners []func(ViewModel)
}

func NewAggregate() *Aggregate {
	return &Aggregate{loaded: map[Section]bool{}}
}

// OnUpdate registers fn to receive a snapshot after every accepted change.
// fn runs on the delivering goroutine, outside the state lock, and must not
// call Reset or Apply.
func (a *Aggregate) OnUpdate(fn func(ViewModel)) {
	a.mu.Lock()
	a.listeners = append(a.listeners, fn)
	a.mu.Unlock()
}

// Reset empties every section, binds the aggregate to identity and starts a
// new generation. critical is the section that gates Loading; SectionNone
// means nothing is awaited.
func (a *Aggregate) Reset(identity *entity.Identity, critical Section) uint64 {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.generation++
	a.critical = critical
	a.identity = cloneIdentity(identity)
	a.listings = nil
	a.equipment = nil
	a.profile = nil
	a.bookings = nil
	a.loaded = map[Section]bool{}
	gen := a.generation
	vm := a.snapshotLocked()
	listeners := a.listeners
	a.mu.Unlock()

	notify(listeners, vm)
	return gen
}

func (a *Aggregate) ApplyListings(gen uint64, listings []entity.CropListing) bool {
	return a.apply(gen, SectionListings, func() {
		a.listings = append([]entity.CropListing(nil), listings...)
	})
}

func (a *Aggregate) ApplyEquipment(gen uint64, equipment []entity.EquipmentListing) bool {
	return a.apply(gen, SectionEquipment, func() {
		a.equipment = append([]entity.EquipmentListing(nil), equipment...)
	})
}

// ApplyProfile sets the expert profile section; nil means the identity has
// no profile yet.
func (a *Aggregate) ApplyProfile(gen uint64, profile *entity.ExpertProfile) bool {
	return a.apply(gen, SectionProfile, func() {
		if profile == nil {
			a.profile = nil
			return
		}
		copied := *profile
		a.profile = &copied
	})
}

func (a *Aggregate) ApplyBookings(gen uint64, bookings []entity.Booking) bool {
	return a.apply(gen, SectionBookings, func() {
		a.bookings = append([]entity.Booking(nil), bookings...)
	})
}

func (a *Aggregate) apply(gen uint64, section Section, set func()) bool {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	if gen != a.generation {
		a.mu.Unlock()
		return false
	}
	set()
	a.loaded[section] = true
	vm := a.snapshotLocked()
	listeners := a.listeners
	a.mu.Unlock()

	notify(listeners, vm)
	return true
}

func (a *Aggregate) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generation
}

func (a *Aggregate) Snapshot() ViewModel {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *Aggregate) snapshotLocked() ViewModel {
	loaded := make(map[Section]bool, len(a.loaded))
	for k, v := range a.loaded {
		loaded[k] = v
	}

	vm := ViewModel{
		Identity:  cloneIdentity(a.identity),
		Listings:  append([]entity.CropListing(nil), a.listings...),
		Equipment: append([]entity.EquipmentListing(nil), a.equipment...),
		Bookings:  append([]entity.Booking(nil), a.bookings...),
		Loading:   a.critical != SectionNone && !loaded[a.critical],
		loaded:    loaded,
	}
	if a.profile != nil {
		profile := *a.profile
		vm.Profile = &profile
	}
	return vm
}

func notify(listeners []func(ViewModel), vm ViewModel) {
	for _, fn := range listeners {
		fn(vm)
	}
}

func cloneIdentity(identity *entity.Identity) *entity.Identity {
	if identity == nil {
		return nil
	}
	copied := *identity
	return &copied
}
