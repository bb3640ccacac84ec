package utils

import (
	"mentor-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	if input == nil {
		return nil
	}
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func trimStringPointer(input *string) {
	if input != nil {
		*input = strings.TrimSpace(*input)
	}
}

func SanitizeUpdateMentorProfileRequest(input *requests.UpdateMentorProfile) {
	trimStringPointer(input.Name)
	trimStringPointer(input.Title)
	trimStringPointer(input.Bio)
	trimStringPointer(input.CountryCode)
	trimStringPointer(input.Gender)
	trimStringPointer(input.LinkedIn)
	trimStringPointer(input.BankName)
	trimStringPointer(input.UPIID)

	if input.Email != nil {
		*input.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		*input.Phone = NormalizePhoneDigits(*input.Phone)
	}
	if input.AccountNumber != nil {
		*input.AccountNumber = strings.ReplaceAll(strings.TrimSpace(*input.AccountNumber), " ", "")
	}
	if input.IFSC != nil {
		*input.IFSC = strings.ToUpper(strings.TrimSpace(*input.IFSC))
	}

	input.Expertise = cleanWhiteSpaceFromEachStringOfAnArray(input.Expertise)
}

func SanitizeSaveCompanyProfileRequest(input *requests.SaveCompanyProfile) {
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Website = strings.TrimSpace(input.Website)
	input.Industry = strings.TrimSpace(input.Industry)
	input.Size = strings.TrimSpace(input.Size)
	input.About = strings.TrimSpace(input.About)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeUpdateSlotRequest(input *requests.UpdateSlot) {
	input.Field = strings.TrimSpace(input.Field)
	input.Value = strings.TrimSpace(input.Value)
}
