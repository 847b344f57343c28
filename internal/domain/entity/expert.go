package entity

import (
	"time"
)

// ExpertProfile is an agricultural expert's public consultation profile.
// CallRequests is bumped on a best-effort basis whenever someone starts a call.
type ExpertProfile struct {
	ID           string    `json:"id" firestore:"-"`
	OwnerID      string    `json:"owner_id" firestore:"userId"`
	Name         string    `json:"name" firestore:"name"`
	Email        string    `json:"email" firestore:"email"`
	Specialty    string    `json:"specialty" firestore:"specialty"`
	Education    string    `json:"education" firestore:"education"`
	Experience   string    `json:"experience" firestore:"experience"`
	Bio          string    `json:"bio" firestore:"bio"`
	Phone        string    `json:"phone" firestore:"phone"`
	CallRequests int       `json:"call_requests" firestore:"callRequests"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
}

var expertSchema = schema{"userId", "name", "email", "specialty", "education", "experience", "bio", "phone", "callRequests", "createdAt"}

func DecodeExpertProfile(id string, data map[string]interface{}) (*ExpertProfile, error) {
	r := newFieldReader(CollectionExperts, id, data, expertSchema)
	p := &ExpertProfile{
		ID:           id,
		OwnerID:      r.String("userId"),
		Name:         r.String("name"),
		Email:        r.String("email"),
		Specialty:    r.String("specialty"),
		Education:    r.String("education"),
		Experience:   r.String("experience"),
		Bio:          r.String("bio"),
		Phone:        r.String("phone"),
		CallRequests: r.Int("callRequests"),
		CreatedAt:    r.Time("createdAt"),
	}
	return p, r.Done()
}

type ServiceType string

const (
	ServiceFarmVisit ServiceType = "Farm Visit"
	ServiceVideoCall ServiceType = "Video Call"
	ServiceVoiceCall ServiceType = "Voice Call"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceFarmVisit, ServiceVideoCall, ServiceVoiceCall:
		return true
	}
	return false
}

const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// Booking is a consultation request from a farmer to an expert.
type Booking struct {
	ID            string      `json:"id" firestore:"-"`
	ExpertID      string      `json:"expert_id" firestore:"expertId"`
	ExpertName    string      `json:"expert_name" firestore:"expertName"`
	ExpertOwnerID string      `json:"expert_owner_id" firestore:"expertUserId"`
	RequesterID   string      `json:"requester_id" firestore:"userId"`
	RequesterName string      `json:"requester_name" firestore:"userName"`
	ServiceType   ServiceType `json:"service_type" firestore:"serviceType"`
	Status        string      `json:"status" firestore:"status"`
	CreatedAt     time.Time   `json:"created_at" firestore:"createdAt"`
}

func (b Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

var bookingSchema = schema{"expertId", "expertName", "expertUserId", "userId", "userName", "serviceType", "status", "createdAt"}

func DecodeBooking(id string, data map[string]interface{}) (*Booking, error) {
	r := newFieldReader(CollectionBookings, id, data, bookingSchema)
	b := &Booking{
		ID:            id,
		ExpertID:      r.String("expertId"),
		ExpertName:    r.String("expertName"),
		ExpertOwnerID: r.String("expertUserId"),
		RequesterID:   r.String("userId"),
		RequesterName: r.String("userName"),
		ServiceType:   ServiceType(r.String("serviceType")),
		Status:        r.String("status"),
		CreatedAt:     r.Time("createdAt"),
	}
	return b, r.Done()
}

// SupportTicket is a help-desk message. Guests use the "guest" requester id.
type SupportTicket struct {
	ID            string    `json:"id" firestore:"-"`
	RequesterID   string    `json:"requester_id" firestore:"userId"`
	RequesterName string    `json:"requester_name" firestore:"userName"`
	Subject       string    `json:"subject" firestore:"subject"`
	Message       string    `json:"message" firestore:"message"`
	Status        string    `json:"status" firestore:"status"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
