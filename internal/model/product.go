package model

// Product is the document body stored under a product key. Every field is
// optional: the GraphQL schema marks them all nullable and the store treats
// the document as an opaque blob of this shape. The key itself is never part
// of the document. Tag elements are pointers because the schema's [String]
// list admits null elements.
type Product struct {
	Name     *string    `json:"name,omitempty"`
	Price    *float64   `json:"price,omitempty"`
	Quantity *int32     `json:"quantity,omitempty"`
	Tags     *[]*string `json:"tags,omitempty"`
}
