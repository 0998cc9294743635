// api/errors/catalog_errors.go
package errors

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidProductData = errors.New("invalid product data")
	ErrProductConflict    = errors.New("product conflict")

	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidCategoryData = errors.New("invalid category data")
	ErrCategoryConflict    = errors.New("category conflict")

	ErrVendorNotFound    = errors.New("vendor not found")
	ErrInvalidVendorData = errors.New("invalid vendor data")
	ErrVendorConflict    = errors.New("vendor conflict")

	ErrAttributeNotFound      = errors.New("attribute not found")
	ErrAttributeValueNotFound = errors.New("attribute value not found")
	ErrInvalidAttributeData   = errors.New("invalid attribute data")
	ErrAttributeConflict      = errors.New("attribute conflict")

	ErrVariantNotFound    = errors.New("variant not found")
	ErrInvalidVariantData = errors.New("invalid variant data")
	ErrVariantConflict    = errors.New("variant conflict")
)
