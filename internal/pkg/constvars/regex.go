package constvars

const (
	RegexEmail         = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexNumeric       = `^\d+$`
	RegexPhoneDigits   = `^\d{8,15}$`
	RegexUPIID         = `^[\w.-]+@[\w.-]+$`
	RegexTime24        = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexDateYYYYMMDD  = `^\d{4}-\d{2}-\d{2}$`
	RegexURL           = `^(http|https):\/\/[^\s$.?#].[^\s]*$`
	RegexHexColorCode  = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})$`
	RegexPhoneNumberCC = `^\+[1-9]\d{0,3}$`
)
