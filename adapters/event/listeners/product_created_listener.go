package listeners

import (
	"github.com/dddlab/backend/domain"
	"github.com/dddlab/backend/domain/product"
	"go.uber.org/zap"
)

// SendEmailWhenProductIsCreatedHandler stands in for the mailer: it logs the
// email that would be sent to the catalog team.
type SendEmailWhenProductIsCreatedHandler struct {
	logger *zap.SugaredLogger
}

func NewSendEmailWhenProductIsCreatedHandler(logger *zap.SugaredLogger) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{logger: logger}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(event domain.Event) error {
	created, ok := event.(product.ProductCreatedEvent)
	if !ok {
		return nil
	}

	data := created.Data()
	h.logger.Infow("Sending email to catalog team",
		zap.String("product_id", data.ID),
		zap.String("product_name", data.Name),
		zap.Float64("price", data.Price),
	)

	return nil
}
