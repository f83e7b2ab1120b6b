package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser   = "user"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

const (
	ProductStatusPending  = "pending"
	ProductStatusApproved = "approved"
	ProductStatusRejected = "rejected"
)

// User - учетная запись, одна на email
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Name         string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo        string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	LastLoggedIn time.Time          `json:"last_loggedIn" bson:"last_loggedIn"`
}

// PricePoint - цена товара на дату, используется для графика цен
type PricePoint struct {
	Date  string `json:"date" bson:"date"`
	Price Number `json:"price" bson:"price"`
}

// Product - товар вендора на рынке, публикуется после модерации (status=approved)
type Product struct {
	ID                primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VendorEmail       string             `json:"vendor_email" bson:"vendor_email"`
	VendorName        string             `json:"vendor_name" bson:"vendor_name"`
	Market            string             `json:"market" bson:"market"`
	MarketDescription string             `json:"marketDescription" bson:"marketDescription"`
	ItemName          string             `json:"itemName" bson:"itemName"`
	ItemDescription   string             `json:"itemDescription" bson:"itemDescription"`
	Prices            []PricePoint       `json:"prices" bson:"prices"`
	PricePerUnit      float64            `json:"pricePerUnit" bson:"pricePerUnit"`
	ProductImage      string             `json:"product_image,omitempty" bson:"product_image,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	Status            string             `json:"status" bson:"status"`
	Feedback          string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

type WatchlistEntry struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	ProductID string             `json:"productId" bson:"productId"`
	ItemName  string             `json:"itemName,omitempty" bson:"itemName,omitempty"`
	Market    string             `json:"market,omitempty" bson:"market,omitempty"`
	Date      time.Time          `json:"date" bson:"date"`
}

type Order struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	BuyerEmail      string             `json:"buyerEmail" bson:"buyerEmail"`
	ProductID       string             `json:"productId" bson:"productId"`
	ItemName        string             `json:"itemName" bson:"itemName"`
	Market          string             `json:"market,omitempty" bson:"market,omitempty"`
	VendorEmail     string             `json:"vendor_email,omitempty" bson:"vendor_email,omitempty"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	PricePerUnit    float64            `json:"pricePerUnit" bson:"pricePerUnit"`
	Amount          float64            `json:"amount" bson:"amount"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty" bson:"paymentIntentId,omitempty"`
	Date            time.Time          `json:"date" bson:"date"`
}

type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	UserEmail string             `json:"userEmail" bson:"userEmail"`
	UserName  string             `json:"userName,omitempty" bson:"userName,omitempty"`
	UserPhoto string             `json:"userPhoto,omitempty" bson:"userPhoto,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	Date      time.Time          `json:"date" bson:"date"`
}

type Advertisement struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VendorEmail string             `json:"vendor_email" bson:"vendor_email"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	Status      string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ItemName - одна строка результата агрегации уникальных наименований
type ItemName struct {
	ItemName string `json:"itemName" bson:"itemName"`
}

// MarketplaceEvent - событие для Kafka, ключ сообщения = ID документа
type MarketplaceEvent struct {
	EventType   string    `json:"event_type"` // PRODUCT_SUBMITTED, PRODUCT_STATUS_CHANGED, ORDER_PLACED, REVIEW_CREATED
	DocumentID  string    `json:"document_id"`
	ProductID   string    `json:"product_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	VendorEmail string    `json:"vendor_email,omitempty"`
	Status      string    `json:"status,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	Rating      int       `json:"rating,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

const (
	EventProductSubmitted     = "PRODUCT_SUBMITTED"
	EventProductStatusChanged = "PRODUCT_STATUS_CHANGED"
	EventOrderPlaced          = "ORDER_PLACED"
	EventReviewCreated        = "REVIEW_CREATED"
)
