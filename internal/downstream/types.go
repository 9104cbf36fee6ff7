package downstream

import "encoding/json"

// Operation is a single partial-update instruction in the representation the
// sales-data service expects. Value is kept opaque; the service owns all
// validation of paths and operation kinds.
type Operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// RegisterRequest is the payload for the user registration operation.
type RegisterRequest struct {
	UserName  string `json:"userName"  validate:"required,max=50"`
	UserEmail string `json:"userEmail" validate:"required,email,max=50"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for the login operation.
type LoginRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
}

// LoginResult is the identity the sales-data service returns for valid
// credentials, including the bearer token it issued. A nil result with a nil
// error means the credentials resolved to no user.
type LoginResult struct {
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserRole  string `json:"userRole"`
	Token     string `json:"token"`
}

// PasswordChangeRequest is the payload for the change-password operation.
type PasswordChangeRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// ProductRequest is the payload for the product creation operation.
type ProductRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Category    string  `json:"category"    validate:"required,max=50"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

// OrderItem is one line of an order creation payload.
type OrderItem struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"  validate:"required,gt=0"`
}

// OrderRequest is the payload for the order creation operation.
type OrderRequest struct {
	UserID int64       `json:"userId" validate:"required,gt=0"`
	Items  []OrderItem `json:"items"  validate:"required,min=1,dive"`
}
