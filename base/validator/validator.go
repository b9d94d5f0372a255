package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// TagAddress validates a hex account address
const TagAddress = "address"

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	if err := v.RegisterValidation(TagAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	}); err != nil {
		panic(err)
	}
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
