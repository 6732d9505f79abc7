package transport

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PublicUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type CreateIngredientRequest struct {
	Name              string   `json:"name"`
	IsAvailable       bool     `json:"is_available"`
	AvailableQuantity *float64 `json:"available_quantity"`
}

type RecipeLinkRequest struct {
	IngredientID    uint     `json:"ingredient"`
	QuantityPercent *float64 `json:"quantity_percent"`
}

type CreateItemRequest struct {
	Name              string              `json:"name"`
	AvailableQuantity int                 `json:"available_quantity"`
	CostPrice         *float64            `json:"cost_price"`
	SellingPrice      *float64            `json:"selling_price"`
	Ingredients       []RecipeLinkRequest `json:"ingredients"`
}

type CreateOrderRequest struct {
	ItemID   uint `json:"item"`
	Quantity int  `json:"quantity"`
}
