package usecase

import (
	"context"
	"strconv"
	"sync"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/errors"
)

type fakeUsers struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	getErr    error
	createErr error
	created   []*entity.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*entity.User{}}
}

func (f *fakeUsers) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.UID] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return u, nil
}

type fakeAuth struct {
	uid        string
	createErr  error
	signInErr  error
	verifyErr  error
	session    *entity.AuthSession
	provider   *entity.ProviderUser
	revoked    []string
	deleted    []string
	deleteErr  error
	createCall int
}

func (f *fakeAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.createCall++
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.uid, nil
}

func (f *fakeAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return f.uid, nil
}

func (f *fakeAuth) GetUser(ctx context.Context, uid string) (*entity.ProviderUser, error) {
	if f.provider == nil {
		return nil, errors.NotFound("Account", nil)
	}
	return f.provider, nil
}

func (f *fakeAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.sessionFor(email), nil
}

func (f *fakeAuth) SignInWithIdp(ctx context.Context, providerID, idToken, requestURI string) (*entity.AuthSession, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.sessionFor(""), nil
}

func (f *fakeAuth) sessionFor(email string) *entity.AuthSession {
	if f.session != nil {
		return f.session
	}
	return &entity.AuthSession{UID: f.uid, Email: email, IDToken: "id-token", RefreshToken: "refresh-token"}
}

func (f *fakeAuth) RevokeRefreshTokens(ctx context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func (f *fakeAuth) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	return f.deleteErr
}

func (f *fakeAuth) TestConnection(ctx context.Context) error {
	return nil
}

type fakeCrops struct {
	crops   []*entity.CropListing
	created []*entity.CropListing
}

func (f *fakeCrops) Create(ctx context.Context, crop *entity.CropListing) error {
	crop.ID = "crop-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, crop)
	return nil
}

func (f *fakeCrops) List(ctx context.Context) ([]*entity.CropListing, error) {
	return f.crops, nil
}

func (f *fakeCrops) ListByOwner(ctx context.Context, ownerID string) ([]*entity.CropListing, error) {
	var out []*entity.CropListing
	for _, c := range f.crops {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeEquipment struct {
	items    []*entity.EquipmentListing
	created  []*entity.EquipmentListing
	category string
}

func (f *fakeEquipment) Create(ctx context.Context, item *entity.EquipmentListing) error {
	item.ID = "equipment-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, item)
	return nil
}

func (f *fakeEquipment) List(ctx context.Context, category string) ([]*entity.EquipmentListing, error) {
	f.category = category
	var out []*entity.EquipmentListing
	for _, item := range f.items {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeEquipment) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EquipmentListing, error) {
	var out []*entity.EquipmentListing
	for _, item := range f.items {
		if item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeExperts struct {
	// ownerReadsMiss makes GetByOwner miss, as when a concurrent registration
	// has not landed yet.
	ownerReadsMiss bool

	experts      []*entity.ExpertProfile
	created      []*entity.ExpertProfile
	incremented  []string
	incrementErr error
	reads        int
}

func (f *fakeExperts) Create(ctx context.Context, profile *entity.ExpertProfile) error {
	for _, e := range f.experts {
		if profile.OwnerID != "" && e.OwnerID == profile.OwnerID {
			return errors.Conflict("Expert profile already exists")
		}
	}
	profile.ID = "expert-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, profile)
	f.experts = append(f.experts, profile)
	return nil
}

func (f *fakeExperts) GetByID(ctx context.Context, id string) (*entity.ExpertProfile, error) {
	f.reads++
	for _, e := range f.experts {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.NotFound("Expert", nil)
}

func (f *fakeExperts) GetByOwner(ctx context.Context, ownerID string) (*entity.ExpertProfile, error) {
	if f.ownerReadsMiss {
		return nil, nil
	}
	for _, e := range f.experts {
		if e.OwnerID == ownerID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeExperts) List(ctx context.Context) ([]*entity.ExpertProfile, error) {
	return f.experts, nil
}

func (f *fakeExperts) IncrementCallRequests(ctx context.Context, id string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incremented = append(f.incremented, id)
	return nil
}

type fakeBookings struct {
	bookings []*entity.Booking
	created  []*entity.Booking
}

func (f *fakeBookings) Create(ctx context.Context, booking *entity.Booking) error {
	booking.ID = "booking-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookings) ListByRequester(ctx context.Context, requesterID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.RequesterID == requesterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) ListByExpertOwner(ctx context.Context, expertOwnerID string) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ExpertOwnerID == expertOwnerID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeTickets struct {
	created []*entity.SupportTicket
	err     error
}

func (f *fakeTickets) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	if f.err != nil {
		return f.err
	}
	ticket.ID = "ticket-" + strconv.Itoa(len(f.created)+1)
	f.created = append(f.created, ticket)
	return nil
}

type fakeDocuments struct {
	owners    map[string]string
	deleteErr error
	deleted   []string
}

func (f *fakeDocuments) OwnerOf(ctx context.Context, collection, id string) (string, error) {
	owner, ok := f.owners[collection+"/"+id]
	if !ok {
		return "", errors.NotFound("Record", nil)
	}
	return owner, nil
}

func (f *fakeDocuments) Delete(ctx context.Context, collection, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, collection+"/"+id)
	return nil
}

type fakeWeather struct {
	weather *entity.Weather
	err     error
	city    string
	lat     float64
	lon     float64
}

func (f *fakeWeather) ByCoordinates(ctx context.Context, lat, lon float64) (*entity.Weather, error) {
	f.lat, f.lon = lat, lon
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.weather
	return &copied, nil
}

func (f *fakeWeather) ByCity(ctx context.Context, city string) (*entity.Weather, error) {
	f.city = city
	if f.err != nil {
		return nil, f.err
	}
	copied := *f.weather
	return &copied, nil
}
