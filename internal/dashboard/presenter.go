package dashboard

import (
	"golang.org/x/text/message"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/i18n"
)

const LoginPath = "/login"

// View is the renderable dashboard for one identity.
type View struct {
	Title        string        `json:"title"`
	DisplayName  string        `json:"display_name,omitempty"`
	RoleLabel    string        `json:"role_label,omitempty"`
	Loading      bool          `json:"loading"`
	AccessDenied bool          `json:"access_denied"`
	CallToAction *Action       `json:"call_to_action,omitempty"`
	Summary      *Stat         `json:"summary,omitempty"`
	Counters     []Stat        `json:"counters,omitempty"`
	Sections     []SectionView `json:"sections,omitempty"`
	SafetyTip    string        `json:"safety_tip,omitempty"`
}

type Action struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SectionView is one visible block. Only the field matching Kind is set.
type SectionView struct {
	Kind         Section                   `json:"kind"`
	Title        string                    `json:"title"`
	Badge        *Stat                     `json:"badge,omitempty"`
	EmptyMessage string                    `json:"empty_message,omitempty"`
	Action       *Action                   `json:"action,omitempty"`
	Listings     []entity.CropListing      `json:"listings,omitempty"`
	Equipment    []entity.EquipmentListing `json:"equipment,omitempty"`
	Profile      *entity.ExpertProfile     `json:"profile,omitempty"`
	Bookings     []BookingView             `json:"bookings,omitempty"`
}

type BookingView struct {
	entity.Booking
	StatusLabel  string `json:"status_label"`
	ServiceLabel string `json:"service_label"`
}

// Present derives the dashboard for identity from vm. It never modifies vm.
// A nil identity or one without a role gets the access-denied view.
func Present(identity *entity.Identity, vm ViewModel, p *message.Printer) View {
	if identity == nil {
		return accessDenied(p)
	}

	view := View{
		Title:       p.Sprintf(i18n.MsgDashboard),
		DisplayName: identity.DisplayName,
		Loading:     vm.Loading,
		SafetyTip:   p.Sprintf(i18n.MsgSafetyTip),
	}

	switch identity.Role {
	case entity.RoleFarmer:
		view.RoleLabel = p.Sprintf(i18n.MsgRoleFarmer)
		view.Summary = &Stat{Label: p.Sprintf(i18n.MsgListings), Value: len(vm.Listings)}
		view.Sections = []SectionView{
			listingsSection(vm, p),
			{
				Kind:     SectionBookings,
				Title:    p.Sprintf(i18n.MsgMyBookings),
				Action:   &Action{Label: p.Sprintf(i18n.MsgFindExperts), Path: "/experts"},
				Bookings: bookingViews(vm.Bookings, p),
			},
		}
	case entity.RoleVendor:
		view.RoleLabel = p.Sprintf(i18n.MsgRoleVendor)
		view.Summary = &Stat{Label: p.Sprintf(i18n.MsgListings), Value: len(vm.Equipment)}
		view.Sections = []SectionView{equipmentSection(vm, p)}
	case entity.RoleExpert:
		callRequests := 0
		if vm.Profile != nil {
			callRequests = vm.Profile.CallRequests
		}
		view.RoleLabel = p.Sprintf(i18n.MsgRoleExpert)
		view.Summary = &Stat{Label: p.Sprintf(i18n.MsgBookings), Value: len(vm.Bookings)}
		view.Counters = []Stat{{Label: p.Sprintf(i18n.MsgConsultations), Value: callRequests}}
		view.Sections = []SectionView{
			profileSection(vm, p),
			{
				Kind:     SectionBookings,
				Title:    p.Sprintf(i18n.MsgIncomingBookings),
				Badge:    &Stat{Label: p.Sprintf(i18n.MsgPending), Value: pendingCount(vm.Bookings)},
				Bookings: bookingViews(vm.Bookings, p),
			},
		}
	case entity.RoleNone:
		return accessDenied(p)
	default:
		return accessDenied(p)
	}

	return view
}

func accessDenied(p *message.Printer) View {
	return View{
		Title:        p.Sprintf(i18n.MsgAccessDenied),
		AccessDenied: true,
		CallToAction: &Action{Label: p.Sprintf(i18n.MsgLoginToContinue), Path: LoginPath},
	}
}

func listingsSection(vm ViewModel, p *message.Printer) SectionView {
	s := SectionView{
		Kind:     SectionListings,
		Title:    p.Sprintf(i18n.MsgMyListings),
		Action:   &Action{Label: p.Sprintf(i18n.MsgSellCrop), Path: "/sell"},
		Listings: append([]entity.CropListing(nil), vm.Listings...),
	}
	if len(vm.Listings) == 0 {
		s.EmptyMessage = p.Sprintf(i18n.MsgNothingListed)
	}
	return s
}

func equipmentSection(vm ViewModel, p *message.Printer) SectionView {
	s := SectionView{
		Kind:      SectionEquipment,
		Title:     p.Sprintf(i18n.MsgMyEquipment),
		Action:    &Action{Label: p.Sprintf(i18n.MsgRegisterShop), Path: "/register-vendor"},
		Equipment: append([]entity.EquipmentListing(nil), vm.Equipment...),
	}
	if len(vm.Equipment) == 0 {
		s.EmptyMessage = p.Sprintf(i18n.MsgNothingListed)
	}
	return s
}

func profileSection(vm ViewModel, p *message.Printer) SectionView {
	s := SectionView{
		Kind:  SectionProfile,
		Title: p.Sprintf(i18n.MsgExpertProfile),
	}
	if vm.Profile == nil {
		s.Action = &Action{Label: p.Sprintf(i18n.MsgRegisterExpert), Path: "/register-expert"}
		return s
	}
	profile := *vm.Profile
	s.Profile = &profile
	return s
}

func bookingViews(bookings []entity.Booking, p *message.Printer) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking:      b,
			StatusLabel:  statusLabel(b.Status, p),
			ServiceLabel: serviceLabel(b.ServiceType, p),
		})
	}
	return views
}

func pendingCount(bookings []entity.Booking) int {
	n := 0
	for _, b := range bookings {
		if b.IsPending() {
			n++
		}
	}
	return n
}

func statusLabel(status string, p *message.Printer) string {
	switch status {
	case entity.BookingStatusPending:
		return p.Sprintf(i18n.MsgStatusPending)
	case entity.BookingStatusApproved:
		return p.Sprintf(i18n.MsgStatusApproved)
	case entity.BookingStatusRejected:
		return p.Sprintf(i18n.MsgStatusRejected)
	case entity.BookingStatusCompleted:
		return p.Sprintf(i18n.MsgStatusCompleted)
	default:
		return status
	}
}

func serviceLabel(service entity.ServiceType, p *message.Printer) string {
	switch service {
	case entity.ServiceFarmVisit:
		return p.Sprintf(i18n.MsgFarmVisit)
	case entity.ServiceVideoCall:
		return p.Sprintf(i18n.MsgVideoCall)
	case entity.ServiceVoiceCall:
		return p.Sprintf(i18n.MsgVoiceCall)
	default:
		return string(service)
	}
}
