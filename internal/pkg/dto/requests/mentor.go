package requests

// UpdateMentorProfile is a partial update; omitted fields keep their value.
type UpdateMentorProfile struct {
	Name          *string  `json:"name" validate:"omitnil,notblank,max=100"`
	Title         *string  `json:"title" validate:"omitnil,max=100"`
	Bio           *string  `json:"bio" validate:"omitnil,max=2000"`
	Email         *string  `json:"email" validate:"omitnil,eq=|email"`
	Phone         *string  `json:"phone" validate:"omitnil,phone_digits"`
	CountryCode   *string  `json:"countryCode" validate:"omitnil,max=5"`
	Gender        *string  `json:"gender" validate:"omitnil,eq=|oneof=Male Female Transgender Bisexual"`
	Expertise     []string `json:"expertise" validate:"omitempty,max=20,dive,notblank"`
	LinkedIn      *string  `json:"linkedin" validate:"omitnil,eq=|url"`
	BankName      *string  `json:"bankName" validate:"omitnil,max=100"`
	AccountNumber *string  `json:"accountNumber" validate:"omitnil,digits,max=20"`
	IFSC          *string  `json:"ifsc" validate:"omitnil,max=11"`
	UPIID         *string  `json:"upiId" validate:"omitnil,upi_id"`
}

type UploadProfileImage struct {
	Kind        string `validate:"required,oneof=avatar banner"`
	FileName    string `validate:"required"`
	ContentType string `validate:"required"`
	Size        int64  `validate:"gt=0"`
}

type SaveCompanyProfile struct {
	CompanyName string `json:"companyName" validate:"required,notblank,max=100"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Size        string `json:"size" validate:"omitempty,oneof='1-10 employees' '11-50 employees' '51-200 employees' '201-500 employees' '500+ employees'"`
	About       string `json:"about" validate:"omitempty,max=2000"`
	Address     string `json:"address" validate:"omitempty,max=200"`
}
