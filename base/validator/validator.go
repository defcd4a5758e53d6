package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address is a well-formed hex account
// address. Every address the marketplace stores or pays out to (collection
// contracts, royalty payees, the taker, listing owners) goes through this
// check at the boundary.
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.EqualFold(checksum, address)
}

// NewCustomValidator wraps a validator.Validate as the echo request
// validator used by every payload-binding handler.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
