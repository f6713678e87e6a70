package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleBuyer  string = "buyer"
	RoleSeller string = "seller"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID int
	Role   string
}

func (p Principal) IsSeller() bool {
	return p.Role == RoleSeller
}

type Profile struct {
	ID            int       `db:"id"              json:"id"`
	UserID        int       `db:"user_id"         json:"userId"`
	Bio           string    `db:"bio"             json:"bio"`
	Skills        []string  `db:"skills"          json:"skills"`
	HourlyRate    float64   `db:"hourly_rate"     json:"hourlyRate"`
	AverageRating float64   `db:"average_rating"  json:"averageRating"`
	TotalReviews  int       `db:"total_reviews"   json:"totalReviews"`
	CompletedGigs int       `db:"completed_gigs"  json:"completedGigs"`
	TrophyLevel   string    `db:"trophy_level"    json:"trophyLevel"`
	CreatedAt     time.Time `db:"created_at"      json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at"      json:"updatedAt"`
}

type Service struct {
	ID          int       `db:"id"          json:"id"`
	UserID      int       `db:"user_id"     json:"userId"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category"    json:"category"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
	Packages    []Package `db:"-"           json:"packages,omitempty"`
}

type Package struct {
	ID           int             `db:"id"            json:"id"`
	ServiceID    int             `db:"service_id"    json:"serviceId"`
	Name         string          `db:"name"          json:"name"`
	Description  string          `db:"description"   json:"description"`
	Price        decimal.Decimal `db:"price"         json:"price"`
	DeliveryDays int             `db:"delivery_days" json:"deliveryTime"`
	Features     []string        `db:"features"      json:"features"`
}

type Order struct {
	ID            int             `db:"id"             json:"id"`
	BuyerID       int             `db:"buyer_id"       json:"buyerId"`
	ServiceID     int             `db:"service_id"     json:"serviceId"`
	PackageID     int             `db:"package_id"     json:"packageId"`
	Status        string          `db:"status"         json:"status"`
	PaymentStatus string          `db:"payment_status" json:"paymentStatus"`
	TotalAmount   decimal.Decimal `db:"total_amount"   json:"totalAmount"`
	CreatedAt     time.Time       `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at"     json:"updatedAt"`
	CompletedAt   *time.Time      `db:"completed_at"   json:"completedAt,omitempty"`
}

// Payment is the billing view of an order; it is addressed by the order id.
type Payment struct {
	OrderID   int             `json:"orderId"`
	BuyerID   int             `json:"buyerId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func PaymentOf(o Order) Payment {
	return Payment{OrderID: o.ID, BuyerID: o.BuyerID, Amount: o.TotalAmount, Status: o.PaymentStatus, UpdatedAt: o.UpdatedAt}
}

// OrderDetails is an order with the entities shown on the order page.
type OrderDetails struct {
	Order
	Service  *Service  `json:"service"`
	Package  *Package  `json:"package"`
	Messages []Message `json:"messages"`
}

// OrderParties holds the two users an order concerns, read together with
// the order so ownership checks need no extra round trip.
type OrderParties struct {
	Order
	SellerID     int
	ServiceTitle string
}

type Message struct {
	ID        int       `db:"id"         json:"id"`
	OrderID   int       `db:"order_id"   json:"orderId"`
	UserID    int       `db:"user_id"    json:"userId"`
	Content   string    `db:"content"    json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Review struct {
	ID        int       `db:"id"         json:"id"`
	UserID    int       `db:"user_id"    json:"userId"`
	ServiceID int       `db:"service_id" json:"serviceId"`
	OrderID   int       `db:"order_id"   json:"orderId"`
	Rating    int       `db:"rating"     json:"rating"`
	Comment   string    `db:"comment"    json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type Notification struct {
	ID        int             `db:"id"         json:"id"`
	UserID    int             `db:"user_id"    json:"userId"`
	Type      string          `db:"type"       json:"type"`
	Message   string          `db:"message"    json:"message"`
	Data      json.RawMessage `db:"data"       json:"data"`
	Read      bool            `db:"read"       json:"read"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// RatingSummary is the derived rating state of a seller.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}
