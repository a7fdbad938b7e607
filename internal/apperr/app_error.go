package apperr

import "github.com/paulthomas2107/product-graphql/pkg/zerror"

const (
	ValidationErrorCode    = "VALIDATION_FAILED"
	ProductNotFoundCode    = "PRODUCT_NOT_FOUND"
	StoreReadFailedCode    = "STORE_READ_FAILED"
	StoreWriteFailedCode   = "STORE_WRITE_FAILED"
	PartialFetchFailedCode = "PARTIAL_FETCH_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	// ErrProductNotFound covers any read, replace, sub-document mutate or
	// remove issued against an absent key.
	ErrProductNotFound = zerror.NewNotFound(ProductNotFoundCode, "product not found")

	// ErrStoreRead and ErrStoreWrite cover transport, timeout and auth
	// failures against the store; the repository never retries them.
	ErrStoreRead  = zerror.NewBadGateway(StoreReadFailedCode, "store read failed")
	ErrStoreWrite = zerror.NewBadGateway(StoreWriteFailedCode, "store write failed")

	// ErrPartialFetch marks a search fan-out that lost one of its
	// constituent fetches. The whole operation fails; no partial list is
	// ever returned.
	ErrPartialFetch = zerror.NewBadGateway(PartialFetchFailedCode, "search fetch failed")
)
