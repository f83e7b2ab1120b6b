package entity

// UpsertUserRequest - данные профиля при входе пользователя
type UpsertUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type UpdateRoleRequest struct {
	NewRole string `json:"newRole" validate:"required"`
}

// ProductRequest - тело POST /products и PUT /product/:id.
// Поле status клиента игнорируется: новый товар всегда pending.
type ProductRequest struct {
	VendorEmail       string       `json:"vendor_email" validate:"required,email"`
	VendorName        string       `json:"vendor_name"`
	Market            string       `json:"market" validate:"required"`
	MarketDescription string       `json:"marketDescription"`
	ItemName          string       `json:"itemName" validate:"required"`
	ItemDescription   string       `json:"itemDescription"`
	Prices            []PricePoint `json:"prices"`
	PricePerUnit      Number       `json:"pricePerUnit" validate:"gte=0"`
	ProductImage      string       `json:"product_image"`
	CreatedAt         string       `json:"created_at"`
}

type UpdateProductStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending approved rejected"`
	Feedback string `json:"feedback" validate:"max=1000"`
}

// ProductListQuery - параметры GET /products/all
type ProductListQuery struct {
	Start string `form:"start"`
	End   string `form:"end"`
	Sort  string `form:"sort"`
}

type AddWatchlistRequest struct {
	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	ProductID string `json:"productId" validate:"required"`
	ItemName  string `json:"itemName"`
	Market    string `json:"market"`
}

type CreateOrderRequest struct {
	BuyerEmail      string `json:"buyerEmail" validate:"omitempty,email"`
	ProductID       string `json:"productId" validate:"required"`
	ItemName        string `json:"itemName"`
	Market          string `json:"market"`
	VendorEmail     string `json:"vendor_email"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
	PricePerUnit    Number `json:"pricePerUnit" validate:"gte=0"`
	Amount          Number `json:"amount" validate:"gte=0"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type CreateReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	UserEmail string `json:"userEmail" validate:"omitempty,email"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type CreateAdvertisementRequest struct {
	VendorEmail string `json:"vendor_email" validate:"required,email"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image"`
	Status      string `json:"status"`
}

// UpdateAdvertisementRequest - меняются только переданные поля
type UpdateAdvertisementRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Image       *string `json:"image"`
}

type PaymentIntentRequest struct {
	Amount Number `json:"amount" validate:"gt=0"`
}

type ClientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// MessageResponse - "мягкий" ответ для повторных добавлений
type MessageResponse struct {
	Message string `json:"message"`
}

type DeleteAdvertisementResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
