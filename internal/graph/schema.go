package graph

// Schema is the wire contract served at /graphql. Every field is nullable,
// matching the store's view of a product document as an opaque blob. Note the
// asymmetry: mutations mint keys server-side and never return them, while
// single-entity reads need a key the caller obtained out-of-band.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Product {
		name: String
		price: Float
		quantity: Int
		tags: [String]
	}

	input ProductInput {
		name: String
		price: Float
		quantity: Int
		tags: [String]
	}

	type Query {
		getProduct(id: String): Product
		getAllProductsWithTerm(term: String): [Product]
	}

	type Mutation {
		createProduct(product: ProductInput): Product
		deleteProduct(id: String): Boolean
		updateProduct(id: String, product: ProductInput): Product
		setQuantity(id: String, quantity: Int): Boolean
	}
`
