package checkout

type OrderItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
} // @name checkout.OrderItem

func NewOrderItem(id, name string, price float64, productID string, quantity int) (OrderItem, error) {
	item := OrderItem{
		ID:        id,
		Name:      name,
		Price:     price,
		ProductID: productID,
		Quantity:  quantity,
	}

	if err := item.Validate(); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

func (i OrderItem) Validate() error {
	switch {
	case i.ID == "":
		return ErrIDRequired
	case i.ProductID == "":
		return ErrItemProductRequired
	case i.Quantity <= 0:
		return ErrInvalidItemQuantity
	case i.Price < 0:
		return ErrInvalidItemPrice
	}

	return nil
}

func (i OrderItem) Total() float64 {
	return i.Price * float64(i.Quantity)
}
