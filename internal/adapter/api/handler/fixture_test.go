package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"smartagri/internal/adapter/api"
	"smartagri/internal/adapter/api/handler"
	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/adapter/api/router"
	"smartagri/internal/domain/entity"
	ws "smartagri/internal/infrastructure/websocket"
	"smartagri/internal/live/livetest"
	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/i18n"
)

// Tokens accepted by stubAuth, mapped to uids.
const (
	farmerToken = "farmer-token"
	vendorToken = "vendor-token"
	expertToken = "expert-token"
	ghostToken  = "ghost-token"
)

type fixture struct {
	e         *echo.Echo
	source    *livetest.Source
	manager   *ws.Manager
	users     *memUsers
	auth      *stubAuth
	crops     *memCrops
	equipment *memEquipment
	experts   *memExperts
	bookings  *memBookings
	tickets   *memTickets
	documents *memDocuments
	images    *stubImages
	weather   *stubWeather
	health    *stubTester
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		source:    livetest.NewSource(),
		manager:   ws.NewManager(),
		users:     &memUsers{users: map[string]*entity.User{}},
		auth:      &stubAuth{tokens: map[string]string{}},
		crops:     &memCrops{},
		equipment: &memEquipment{},
		experts:   &memExperts{},
		bookings:  &memBookings{},
		tickets:   &memTickets{},
		documents: &memDocuments{owners: map[string]string{}},
		images:    &stubImages{},
		weather:   &stubWeather{},
		health:    &stubTester{},
	}

	f.addUser(farmerToken, "farmer-1", "Ravi", entity.RoleFarmer)
	f.addUser(vendorToken, "vendor-1", "Agro Tools", entity.RoleVendor)
	f.addUser(expertToken, "expert-1", "Dr. Meera", entity.RoleExpert)
	f.auth.tokens[ghostToken] = "ghost-1"

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	f.manager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(f.users, f.auth)
	gateway := usecase.NewMutationGateway(f.documents, f.experts, f.bookings)

	handler.Setup(
		authUseCase,
		usecase.NewListingUseCase(f.crops, f.equipment),
		usecase.NewExpertUseCase(f.experts),
		gateway,
		usecase.NewSupportUseCase(f.tickets),
		usecase.NewContentUseCase(),
		usecase.NewWeatherUseCase(f.weather, "Kochi"),
		usecase.NewDashboardUseCase(f.crops, f.equipment, f.experts, f.bookings),
	)
	handler.SetupUploadHandler(f.images)
	handler.SetupHealthHandler(handler.BackendCheck{Name: "auth", Tester: f.health})
	handler.SetupDashboardSocketHandler(f.manager, f.source, authUseCase, gateway, nil)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.Use(middleware.Language(i18n.English))
	router.Setup(e, middleware.NewAuthMiddleware(authUseCase))
	f.e = e

	return f
}

func (f *fixture) addUser(token, uid, name string, role entity.Role) {
	f.auth.tokens[token] = uid
	f.users.users[uid] = &entity.User{UID: uid, Name: name, Email: uid + "@example.com", Role: role.String()}
}

type result struct {
	Code int
	Body envelope
	Raw  string
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (f *fixture) do(t *testing.T, method, target, token string, body interface{}) result {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return f.serve(t, req)
}

func (f *fixture) serve(t *testing.T, req *http.Request) result {
	t.Helper()

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	res := result{Code: rec.Code, Raw: rec.Body.String()}
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res.Body), res.Raw)
	}
	return res
}

func (r result) decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body.Data, v), r.Raw)
}

type listData[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// In-memory collaborators.

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func (m *memUsers) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UID] = user
	return nil
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return u, nil
}

type stubAuth struct {
	tokens  map[string]string
	revoked []string
}

func (s *stubAuth) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return "new-" + displayName, nil
}

func (s *stubAuth) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := s.tokens[token]
	if !ok {
		return "", errors.Unauthorized("bad token", nil)
	}
	return uid, nil
}

func (s *stubAuth) GetUser(ctx context.Context, uid string) (*entity.ProviderUser, error) {
	return &entity.ProviderUser{UID: uid, DisplayName: "Provider " + uid}, nil
}

func (s *stubAuth) SignInWithEmailPassword(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	if password != "secret1" {
		return nil, errors.Unauthorized("INVALID_PASSWORD", nil)
	}
	uid := strings.TrimSuffix(email, "@example.com")
	return &entity.AuthSession{UID: uid, Email: email, IDToken: "id-" + uid}, nil
}

func (s *stubAuth) SignInWithIdp(ctx context.Context, providerID, idToken, requestURI string) (*entity.AuthSession, error) {
	return &entity.AuthSession{UID: "google-" + idToken, DisplayName: "Google User", IDToken: "id-google", IsNewUser: true}, nil
}

func (s *stubAuth) RevokeRefreshTokens(ctx context.Context, uid string) error {
	s.revoked = append(s.revoked, uid)
	return nil
}

func (s *stubAuth) DeleteUser(ctx context.Context, uid string) error {
	return nil
}

func (s *stubAuth) TestConnection(ctx context.Context) error {
	return nil
}

type memCrops struct {
	mu    sync.Mutex
	items []*entity.CropListing
}

func (m *memCrops) Create(ctx context.Context, crop *entity.CropListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	crop.ID = "crop-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, crop)
	return nil
}

func (m *memCrops) List(ctx context.Context) ([]*entity.CropListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.CropListing(nil), m.items...), nil
}

func (m *memCrops) ListByOwner(ctx context.Context, ownerID string) ([]*entity.CropListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.CropListing
	for _, c := range m.items {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memEquipment struct {
	mu    sync.Mutex
	items []*entity.EquipmentListing
}

func (m *memEquipment) Create(ctx context.Context, item *entity.EquipmentListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = "eq-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, item)
	return nil
}

func (m *memEquipment) List(ctx context.Context, category string) ([]*entity.EquipmentListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.EquipmentListing
	for _, e := range m.items {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEquipment) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EquipmentListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.EquipmentListing
	for _, e := range m.items {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memExperts struct {
	mu    sync.Mutex
	items []*entity.ExpertProfile
	calls map[string]int
}

func (m *memExperts) Create(ctx context.Context, profile *entity.ExpertProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile.ID = "exp-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, profile)
	return nil
}

func (m *memExperts) GetByID(ctx context.Context, id string) (*entity.ExpertProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Expert", nil)
}

func (m *memExperts) GetByOwner(ctx context.Context, ownerID string) (*entity.ExpertProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memExperts) List(ctx context.Context) ([]*entity.ExpertProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.ExpertProfile(nil), m.items...), nil
}

func (m *memExperts) IncrementCallRequests(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[id]++
	return nil
}

type memBookings struct {
	mu    sync.Mutex
	items []*entity.Booking
}

func (m *memBookings) Create(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ID = "bk-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, booking)
	return nil
}

func (m *memBookings) ListByRequester(ctx context.Context, requesterID string) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, b := range m.items {
		if b.RequesterID == requesterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) ListByExpertOwner(ctx context.Context, expertOwnerID string) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, b := range m.items {
		if b.ExpertOwnerID == expertOwnerID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memTickets struct {
	mu    sync.Mutex
	items []*entity.SupportTicket
}

func (m *memTickets) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ticket.ID = "t-" + strconv.Itoa(len(m.items)+1)
	m.items = append(m.items, ticket)
	return nil
}

type memDocuments struct {
	mu      sync.Mutex
	owners  map[string]string
	deleted []string
}

func (m *memDocuments) put(collection, id, owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[collection+"/"+id] = owner
}

func (m *memDocuments) OwnerOf(ctx context.Context, collection, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owner, ok := m.owners[collection+"/"+id]
	if !ok {
		return "", errors.NotFound("Record", nil)
	}
	return owner, nil
}

func (m *memDocuments) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, collection+"/"+id)
	return nil
}

func (m *memDocuments) deletes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

type stubImages struct {
	uploads []string
}

func (s *stubImages) UploadImage(ctx context.Context, file io.Reader, contentType, ownerID string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.uploads = append(s.uploads, ownerID+":"+contentType+":"+string(data))
	return "https://storage.googleapis.com/agri/listings/" + ownerID + "/img.png", nil
}

func (s *stubImages) DeleteImage(ctx context.Context, imageURL string) error {
	return nil
}

func (s *stubImages) Close() error {
	return nil
}

type stubWeather struct {
	cities []string
}

func (s *stubWeather) ByCoordinates(ctx context.Context, lat, lon float64) (*entity.Weather, error) {
	return &entity.Weather{LocationName: "Thrissur", Temperature: 34, Condition: "Clear"}, nil
}

func (s *stubWeather) ByCity(ctx context.Context, city string) (*entity.Weather, error) {
	s.cities = append(s.cities, city)
	return &entity.Weather{LocationName: city, Temperature: 27, Condition: "Rain"}, nil
}

type stubTester struct {
	err error
}

func (s *stubTester) TestConnection(ctx context.Context) error {
	return s.err
}
