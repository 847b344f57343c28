package dashboard

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartagri/internal/domain/entity"
	"smartagri/internal/live/livetest"
	"smartagri/pkg/i18n"
)

func crop(owner, name string, price float64) map[string]interface{} {
	return map[string]interface{}{"userId": owner, "cropName": name, "price": price}
}

func TestControllerFarmerDashboard(t *testing.T) {
	src := livetest.NewSource()
	ctrl := NewController(context.Background(), src)
	defer ctrl.Close()

	ctrl.IdentityChanged(farmer)
	assert.True(t, ctrl.View(i18n.Printer(i18n.English)).Loading)

	require.True(t, src.Latest(entity.CollectionMarket).Push(
		livetest.Doc("c1", crop("farmer-1", "Ginger", 500)),
		livetest.Doc("c2", crop("farmer-1", "Rice", 40)),
	))
	require.True(t, src.Latest(entity.CollectionBookings).Push())

	view := ctrl.View(i18n.Printer(i18n.English))
	assert.False(t, view.Loading)
	assert.Equal(t, 2, view.Summary.Value)
	assert.Equal(t, []Section{SectionListings, SectionBookings}, kinds(view))
	assert.Nil(t, src.Latest(entity.CollectionExperts), "farmer dashboards do not watch expert profiles")
}

func TestControllerTearsDownBeforeOpening(t *testing.T) {
	src := livetest.NewSource()
	ctrl := NewController(context.Background(), src)
	defer ctrl.Close()

	var (
		mu     sync.Mutex
		frames []ViewModel
	)
	ctrl.Aggregate().OnUpdate(func(vm ViewModel) {
		mu.Lock()
		frames = append(frames, vm)
		mu.Unlock()
	})

	ctrl.IdentityChanged(farmer)
	oldMarket := src.Latest(entity.CollectionMarket)
	require.True(t, oldMarket.Push(livetest.Doc("c1", crop("farmer-1", "Ginger", 500))))

	next := &entity.Identity{ID: "farmer-2", DisplayName: "Meera", Role: entity.RoleFarmer}
	ctrl.IdentityChanged(next)

	for _, st := range src.Streams() {
		if st.Query().Filter.Value == "farmer-1" {
			assert.True(t, st.Stopped(), st.Query().String())
		}
	}

	events := src.Events()
	lastStop, firstNewOpen := -1, len(events)
	for i, e := range events {
		if strings.HasPrefix(e, "stop ") && strings.HasSuffix(e, "farmer-1") {
			lastStop = i
		}
		if strings.HasPrefix(e, "open ") && strings.HasSuffix(e, "farmer-2") && i < firstNewOpen {
			firstNewOpen = i
		}
	}
	require.NotEqual(t, -1, lastStop)
	assert.Less(t, lastStop, firstNewOpen, "events: %v", events)

	assert.False(t, oldMarket.Push(livetest.Doc("c9", crop("farmer-1", "Pepper", 900))))

	mu.Lock()
	defer mu.Unlock()
	for _, frame := range frames {
		if frame.Identity != nil && frame.Identity.ID == "farmer-2" {
			for _, l := range frame.Listings {
				assert.NotEqual(t, "farmer-1", l.OwnerID, "listing of the previous identity leaked")
			}
		}
	}

	view := ctrl.View(i18n.Printer(i18n.English))
	assert.Equal(t, "Meera", view.DisplayName)
	assert.Equal(t, 0, view.Summary.Value)
}

func TestControllerSignOut(t *testing.T) {
	src := livetest.NewSource()
	ctrl := NewController(context.Background(), src)
	defer ctrl.Close()

	ctrl.IdentityChanged(&entity.Identity{ID: "expert-1", Role: entity.RoleExpert})
	require.Len(t, src.Streams(), 2)

	ctrl.IdentityChanged(nil)

	for _, st := range src.Streams() {
		assert.True(t, st.Stopped())
	}
	view := ctrl.View(i18n.Printer(i18n.English))
	assert.True(t, view.AccessDenied)
	assert.Equal(t, LoginPath, view.CallToAction.Path)
}

func TestControllerSubscriptionFailureLeavesSectionEmpty(t *testing.T) {
	src := livetest.NewSource()
	src.OpenErr[entity.CollectionBookings] = assert.AnError
	ctrl := NewController(context.Background(), src)
	defer ctrl.Close()

	ctrl.IdentityChanged(&entity.Identity{ID: "expert-1", Role: entity.RoleExpert})
	require.True(t, src.Latest(entity.CollectionExperts).Push(livetest.Doc("e1", map[string]interface{}{
		"userId":       "expert-1",
		"specialty":    "Soil health",
		"callRequests": int64(4),
	})))

	view := ctrl.View(i18n.Printer(i18n.English))
	assert.False(t, view.Loading)
	assert.Equal(t, 4, view.Counters[0].Value)
	assert.Equal(t, 0, view.Sections[1].Badge.Value)
}

func TestControllerCloseIgnoresLaterChanges(t *testing.T) {
	src := livetest.NewSource()
	ctrl := NewController(context.Background(), src)

	ctrl.IdentityChanged(&entity.Identity{ID: "vendor-1", Role: entity.RoleVendor})
	ctrl.Close()
	ctrl.IdentityChanged(farmer)

	require.Len(t, src.Streams(), 1)
	assert.True(t, src.Streams()[0].Stopped())
}

func TestQueriesFor(t *testing.T) {
	assert.Nil(t, QueriesFor(nil))
	assert.Nil(t, QueriesFor(&entity.Identity{ID: "u1"}))

	vendor := QueriesFor(&entity.Identity{ID: "v1", Role: entity.RoleVendor})
	require.Len(t, vendor, 1)
	assert.Equal(t, "vendors where userId == v1", vendor[0].Query.String())

	expert := QueriesFor(&entity.Identity{ID: "e1", Role: entity.RoleExpert})
	require.Len(t, expert, 2)
	assert.Equal(t, "bookings where expertUserId == e1", expert[1].Query.String())
}
