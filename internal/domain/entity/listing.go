package entity

import (
	"time"
)

const (
	CollectionUsers          = "users"
	CollectionMarket         = "market"
	CollectionVendors        = "vendors"
	CollectionExperts        = "experts"
	CollectionBookings       = "bookings"
	CollectionSupportTickets = "support_tickets"
)

// OwnerField is the field every owned collection uses for the owner's uid.
const OwnerField = "userId"

const DefaultEquipmentImageURL = "https://images.unsplash.com/photo-1589923188900-85dae523342b?w=400"

// CropListing is a farmer's produce listing in the market collection.
type CropListing struct {
	ID          string    `json:"id" firestore:"-"`
	OwnerID     string    `json:"owner_id" firestore:"userId"`
	CropName    string    `json:"crop_name" firestore:"cropName"`
	Price       float64   `json:"price" firestore:"price"`
	Unit        string    `json:"unit" firestore:"unit"`
	Location    string    `json:"location" firestore:"location"`
	Phone       string    `json:"phone" firestore:"phone"`
	Quality     string    `json:"quality" firestore:"quality"`
	Description string    `json:"description" firestore:"description"`
	SellerName  string    `json:"seller_name" firestore:"sellerName"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

var cropSchema = schema{"userId", "cropName", "price", "unit", "location", "phone", "quality", "description", "sellerName", "imageUrl", "createdAt"}

func DecodeCropListing(id string, data map[string]interface{}) (*CropListing, error) {
	r := newFieldReader(CollectionMarket, id, data, cropSchema)
	c := &CropListing{
		ID:          id,
		OwnerID:     r.String("userId"),
		CropName:    r.String("cropName"),
		Price:       r.Float("price"),
		Unit:        r.String("unit"),
		Location:    r.String("location"),
		Phone:       r.String("phone"),
		Quality:     r.String("quality"),
		Description: r.String("description"),
		SellerName:  r.String("sellerName"),
		ImageURL:    r.String("imageUrl"),
		CreatedAt:   r.Time("createdAt"),
	}
	return c, r.Done()
}

var EquipmentCategories = []string{"Machinery", "Fertilizers", "Seeds", "Irrigation", "Tools"}

// EquipmentListing is a vendor's shop item in the vendors collection.
// Price is free text ("₹450/day") as vendors enter it.
type EquipmentListing struct {
	ID          string    `json:"id" firestore:"-"`
	OwnerID     string    `json:"owner_id" firestore:"userId"`
	ShopName    string    `json:"shop_name" firestore:"shopName"`
	ProductName string    `json:"product_name" firestore:"productName"`
	Price       string    `json:"price" firestore:"price"`
	ActionType  string    `json:"action_type" firestore:"actionType"`
	Category    string    `json:"category" firestore:"category"`
	Phone       string    `json:"phone" firestore:"phone"`
	Location    string    `json:"location" firestore:"location"`
	ImageURL    string    `json:"image_url" firestore:"imageUrl"`
	Delivery    bool      `json:"delivery" firestore:"delivery"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

var equipmentSchema = schema{"userId", "shopName", "productName", "price", "actionType", "category", "phone", "location", "imageUrl", "delivery", "createdAt"}

func DecodeEquipmentListing(id string, data map[string]interface{}) (*EquipmentListing, error) {
	r := newFieldReader(CollectionVendors, id, data, equipmentSchema)
	e := &EquipmentListing{
		ID:          id,
		OwnerID:     r.String("userId"),
		ShopName:    r.String("shopName"),
		ProductName: r.String("productName"),
		Price:       r.String("price"),
		ActionType:  r.String("actionType"),
		Category:    r.String("category"),
		Phone:       r.String("phone"),
		Location:    r.String("location"),
		ImageURL:    r.String("imageUrl"),
		Delivery:    r.Bool("delivery"),
		CreatedAt:   r.Time("createdAt"),
	}
	return e, r.Done()
}
