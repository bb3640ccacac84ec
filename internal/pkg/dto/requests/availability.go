package requests

type AddWeeklySlot struct {
	Day string `json:"day" validate:"required,weekday"`
}

// UpdateSlot edits one side of a slot window. Value is checked by the store.
type UpdateSlot struct {
	Field string `json:"field" validate:"required,slot_field"`
	Value string `json:"value" validate:"required"`
}

type EncodeTime struct {
	Hour   int    `json:"hour" validate:"required,min=1,max=12"`
	Minute string `json:"minute" validate:"required,quarter_hour"`
	Period string `json:"period" validate:"required,meridiem"`
}
