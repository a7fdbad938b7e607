package event

import "github.com/paulthomas2107/product-graphql/internal/model"

const (
	TopicProductCreated     = "product.created"
	TopicProductReplaced    = "product.replaced"
	TopicProductQuantitySet = "product.quantity_set"
	TopicProductDeleted     = "product.deleted"
)

type ProductCreatedEvent struct {
	Key     string        `json:"key"`
	Product model.Product `json:"product"`
}

type ProductReplacedEvent struct {
	Key     string        `json:"key"`
	Product model.Product `json:"product"`
}

type ProductQuantitySetEvent struct {
	Key      string `json:"key"`
	Quantity int32  `json:"quantity"`
}

type ProductDeletedEvent struct {
	Key string `json:"key"`
}
