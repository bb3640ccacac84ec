package models

type Mentor struct {
	ID             string                `json:"id" bson:"_id,omitempty"`
	Name           string                `json:"name" bson:"name"`
	Title          string                `json:"title,omitempty" bson:"title,omitempty"`
	Bio            string                `json:"bio,omitempty" bson:"bio,omitempty"`
	Email          string                `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string                `json:"phone,omitempty" bson:"phone,omitempty"`
	CountryCode    string                `json:"countryCode,omitempty" bson:"countryCode,omitempty"`
	Gender         string                `json:"gender,omitempty" bson:"gender,omitempty"`
	Expertise      []string              `json:"expertise,omitempty" bson:"expertise,omitempty"`
	LinkedIn       string                `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	ProfileImage   string                `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	BannerImage    string                `json:"bannerImage,omitempty" bson:"bannerImage,omitempty"`
	BankName       string                `json:"bankName,omitempty" bson:"bankName,omitempty"`
	AccountNumber  string                `json:"accountNumber,omitempty" bson:"accountNumber,omitempty"`
	IFSC           string                `json:"ifsc,omitempty" bson:"ifsc,omitempty"`
	UPIID          string                `json:"upiId,omitempty" bson:"upiId,omitempty"`
	Availability   []WeeklySlot          `json:"-" bson:"availability,omitempty"`
	DateOverrides  map[string][]TimeSlot `json:"-" bson:"dateAvailability,omitempty"`
	CompanyProfile *CompanyProfile       `json:"-" bson:"companyProfile,omitempty"`
	TimeModel      `bson:",inline"`
}

// MentorProfileUpdate holds the fields a partial profile update may set;
// nil fields are left untouched.
type MentorProfileUpdate struct {
	Name          *string
	Title         *string
	Bio           *string
	Email         *string
	Phone         *string
	CountryCode   *string
	Gender        *string
	Expertise     []string
	LinkedIn      *string
	ProfileImage  *string
	BannerImage   *string
	BankName      *string
	AccountNumber *string
	IFSC          *string
	UPIID         *string
}
