package validator

import (
	"log"

	"terek_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. Registration
// failures abort startup.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-donation-status", validateDonationStatus)
	mustRegister("is-inquiry-kind", validateInquiryKind)
}

// Empty values pass; 'required' handles presence separately.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateDonationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DonationStatus(value) {
	case models.DonationStatusPending,
		models.DonationStatusAwaitingPayment,
		models.DonationStatusCompleted,
		models.DonationStatusFailed,
		models.DonationStatusCancelled:
		return true
	default:
		return false
	}
}

func validateInquiryKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InquiryKind(value) {
	case models.InquiryKindContact, models.InquiryKindPartnership:
		return true
	default:
		return false
	}
}
