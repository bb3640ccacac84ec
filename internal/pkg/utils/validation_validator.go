package utils

import (
	"mentor-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	numericPattern     = regexp.MustCompile(constvars.RegexNumeric)
	phoneDigitsPattern = regexp.MustCompile(constvars.RegexPhoneDigits)
	upiIDPattern       = regexp.MustCompile(constvars.RegexUPIID)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("time24", validateTime24)
	validate.RegisterValidation("date_key", validateDateKey)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("slot_field", validateSlotField)
	validate.RegisterValidation("meridiem", validateMeridiem)
	validate.RegisterValidation("quarter_hour", validateQuarterHour)
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("digits", validateDigits)
	validate.RegisterValidation("upi_id", validateUPIID)
	validate.RegisterValidation("notblank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTime24(fl validator.FieldLevel) bool {
	return IsCanonicalTime24(fl.Field().String())
}

func validateDateKey(fl validator.FieldLevel) bool {
	_, err := ParseDateKey(fl.Field().String())
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := ParseWeekday(fl.Field().String())
	return ok
}

func validateSlotField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SlotFieldStartTime || value == constvars.SlotFieldEndTime
}

func validateMeridiem(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.PeriodAM || value == constvars.PeriodPM
}

func validateQuarterHour(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, minute := range constvars.PickerMinutes {
		if value == minute {
			return true
		}
	}
	return false
}

// Optional fields pass when empty; pair with "required" to force presence.
func validatePhoneDigits(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || phoneDigitsPattern.MatchString(value)
}

func validateDigits(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || numericPattern.MatchString(value)
}

func validateUPIID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || upiIDPattern.MatchString(value)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
