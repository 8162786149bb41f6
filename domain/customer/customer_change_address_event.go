package customer

import "github.com/dddlab/backend/domain"

const CustomerChangeAddressEventName = "CustomerChangeAddressEvent"

type CustomerAddressChangedData struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	NewAddress   Address `json:"new_address"`
}

type CustomerChangeAddressEvent struct {
	domain.BaseEvent
}

// NewCustomerChangeAddressEvent snapshots the customer's current address, so
// it must be called after ChangeAddress.
func NewCustomerChangeAddressEvent(c *Customer) CustomerChangeAddressEvent {
	data := CustomerAddressChangedData{
		CustomerID:   c.ID,
		CustomerName: c.Name,
	}

	if c.Address != nil {
		data.NewAddress = *c.Address
	}

	return CustomerChangeAddressEvent{
		BaseEvent: domain.NewBaseEvent(CustomerChangeAddressEventName, data),
	}
}

func (e CustomerChangeAddressEvent) Data() CustomerAddressChangedData {
	data, _ := e.EventData().(CustomerAddressChangedData)

	return data
}
