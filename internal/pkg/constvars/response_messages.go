package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Availability messages
	GetAvailabilitySuccessMessage          = "get availability successfully"
	GetDateAvailabilitySuccessMessage      = "get date availability successfully"
	AddWeeklySlotSuccessMessage            = "weekly slot added successfully"
	UpdateWeeklySlotSuccessMessage         = "weekly slot updated successfully"
	RemoveWeeklySlotSuccessMessage         = "weekly slot removed successfully"
	AddDateSlotSuccessMessage              = "date slot added successfully"
	UpdateDateSlotSuccessMessage           = "date slot updated successfully"
	RemoveDateSlotSuccessMessage           = "date slot removed successfully"
	SetDateUnavailableSuccessMessage       = "date marked as unavailable successfully"
	ClearDateOverrideSuccessMessage        = "date override cleared successfully"
	SaveAvailabilitySuccessMessage         = "Availability settings saved successfully!"
	DiscardAvailabilityDraftSuccessMessage = "availability draft discarded successfully"

	// Time messages
	EncodeTimeSuccessMessage = "time encoded successfully"
	DecodeTimeSuccessMessage = "time decoded successfully"

	// Profile messages
	GetProfileSuccessMessage           = "get profile successfully"
	UpdateProfileSuccessMessage        = "profile updated successfully"
	UploadProfileImageSuccessMessage   = "profile image uploaded successfully"
	GetCompanyProfileSuccessMessage    = "get company profile successfully"
	UpdateCompanyProfileSuccessMessage = "company profile saved successfully"
)
