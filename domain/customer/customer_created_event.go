package customer

import "github.com/dddlab/backend/domain"

const CustomerCreatedEventName = "CustomerCreatedEvent"

type CustomerCreatedData struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

type CustomerCreatedEvent struct {
	domain.BaseEvent
}

func NewCustomerCreatedEvent(c *Customer) CustomerCreatedEvent {
	data := CustomerCreatedData{
		ID:   c.ID,
		Name: c.Name,
	}

	if c.Address != nil {
		address := *c.Address
		data.Address = &address
	}

	return CustomerCreatedEvent{
		BaseEvent: domain.NewBaseEvent(CustomerCreatedEventName, data),
	}
}

func (e CustomerCreatedEvent) Data() CustomerCreatedData {
	data, _ := e.EventData().(CustomerCreatedData)

	return data
}
