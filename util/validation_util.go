// api/util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/solistore/gateway/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateProduct(product model.Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name cannot be empty")
	}
	if product.ListPrice < 0 {
		return fmt.Errorf("product list price cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateVendor(vendor model.Vendor) error {
	if vendor.Name == "" {
		return fmt.Errorf("vendor name cannot be empty")
	}
	if vendor.Email != "" {
		if err := v.validate.Var(vendor.Email, "email"); err != nil {
			return fmt.Errorf("vendor email is not valid")
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateCategory(category model.Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if user.Name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if err := v.validate.Var(user.Email, "required,email"); err != nil {
		return fmt.Errorf("user email is not valid")
	}
	return nil
}
