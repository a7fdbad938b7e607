package graph

import (
	"context"
	"log/slog"

	"github.com/paulthomas2107/product-graphql/internal/event"
	"github.com/paulthomas2107/product-graphql/internal/model"
	"github.com/paulthomas2107/product-graphql/internal/repository"
	"github.com/paulthomas2107/product-graphql/pkg/ptr"
	"github.com/paulthomas2107/product-graphql/pkg/validator"
)

// searchResultLimit is the fixed cap on getAllProductsWithTerm results.
const searchResultLimit = 2

// Resolver is the root resolver and the dependency container for the GraphQL
// layer. Every schema field maps to exactly one repository operation; a
// failing field nulls itself and attaches an error entry without touching
// its siblings.
type Resolver struct {
	logger *slog.Logger
	repo   repository.ProductRepository
	events *event.Publisher
	valid  validator.Validator
}

func NewResolver(
	logger *slog.Logger,
	repo repository.ProductRepository,
	events *event.Publisher,
	valid validator.Validator,
) *Resolver {
	return &Resolver{
		logger: logger.With(slog.String("service", "graphql")),
		repo:   repo,
		events: events,
		valid:  valid,
	}
}

// productInput mirrors the ProductInput schema type.
type productInput struct {
	Name     *string
	Price    *float64
	Quantity *int32
	Tags     *[]*string
}

func (in *productInput) toModel() model.Product {
	return model.Product{
		Name:     in.Name,
		Price:    in.Price,
		Quantity: in.Quantity,
		Tags:     in.Tags,
	}
}

// productResolver resolves the Product schema type from a stored document.
type productResolver struct {
	p model.Product
}

func (r *productResolver) Name() *string    { return r.p.Name }
func (r *productResolver) Price() *float64  { return r.p.Price }
func (r *productResolver) Quantity() *int32 { return r.p.Quantity }
func (r *productResolver) Tags() *[]*string { return r.p.Tags }

func (r *Resolver) GetProduct(ctx context.Context, args struct{ ID *string }) (*productResolver, error) {
	params := struct {
		ID string `validate:"required,uuid"`
	}{ID: deref(args.ID)}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "getProduct", err)
	}

	product, err := r.repo.GetByKey(ctx, params.ID)
	if err != nil {
		return nil, r.fieldFailure(ctx, "getProduct", err)
	}

	return &productResolver{p: product}, nil
}

func (r *Resolver) GetAllProductsWithTerm(ctx context.Context, args struct{ Term *string }) (*[]*productResolver, error) {
	params := struct {
		Term string `validate:"required"`
	}{Term: deref(args.Term)}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "getAllProductsWithTerm", err)
	}

	products, err := r.repo.SearchByTerm(ctx, params.Term, searchResultLimit)
	if err != nil {
		return nil, r.fieldFailure(ctx, "getAllProductsWithTerm", err)
	}

	resolvers := make([]*productResolver, 0, len(products))
	for _, product := range products {
		resolvers = append(resolvers, &productResolver{p: product})
	}

	return &resolvers, nil
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Product *productInput }) (*productResolver, error) {
	params := struct {
		Product *productInput `validate:"required"`
	}{Product: args.Product}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "createProduct", err)
	}

	key, created, err := r.repo.Create(ctx, args.Product.toModel())
	if err != nil {
		return nil, r.fieldFailure(ctx, "createProduct", err)
	}

	r.events.Created(ctx, key, created)

	return &productResolver{p: created}, nil
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID *string }) (*bool, error) {
	params := struct {
		ID string `validate:"required,uuid"`
	}{ID: deref(args.ID)}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "deleteProduct", err)
	}

	if err := r.repo.RemoveByKey(ctx, params.ID); err != nil {
		return nil, r.fieldFailure(ctx, "deleteProduct", err)
	}

	r.events.Deleted(ctx, params.ID)

	return ptr.New(true), nil
}

func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID      *string
	Product *productInput
}) (*productResolver, error) {
	params := struct {
		ID      string        `validate:"required,uuid"`
		Product *productInput `validate:"required"`
	}{ID: deref(args.ID), Product: args.Product}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "updateProduct", err)
	}

	replaced, err := r.repo.ReplaceByKey(ctx, params.ID, args.Product.toModel())
	if err != nil {
		return nil, r.fieldFailure(ctx, "updateProduct", err)
	}

	r.events.Replaced(ctx, params.ID, replaced)

	return &productResolver{p: replaced}, nil
}

func (r *Resolver) SetQuantity(ctx context.Context, args struct {
	ID       *string
	Quantity *int32
}) (*bool, error) {
	params := struct {
		ID       string `validate:"required,uuid"`
		Quantity *int32 `validate:"required"`
	}{ID: deref(args.ID), Quantity: args.Quantity}
	if err := r.valid.Validate(params); err != nil {
		return nil, r.fieldFailure(ctx, "setQuantity", err)
	}

	if err := r.repo.SetQuantityByKey(ctx, params.ID, *params.Quantity); err != nil {
		return nil, r.fieldFailure(ctx, "setQuantity", err)
	}

	r.events.QuantitySet(ctx, params.ID, *params.Quantity)

	return ptr.New(true), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
