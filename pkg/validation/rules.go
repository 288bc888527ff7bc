package validation

import (
	"github.com/go-playground/validator/v10"
)

// registerRules wires the project-specific tags used in DTOs.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("listing_status", isListingStatus); err != nil {
		return err
	}
	return nil
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "maintenance", "retired":
		return true
	}
	return false
}

func isListingStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "sold", "removed":
		return true
	}
	return false
}
