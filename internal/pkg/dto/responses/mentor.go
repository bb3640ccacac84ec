package responses

type MentorProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	CountryCode     string   `json:"countryCode,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Expertise       []string `json:"expertise,omitempty"`
	LinkedIn        string   `json:"linkedin,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	BannerImageURL  string   `json:"bannerImageUrl,omitempty"`
	BankName        string   `json:"bankName,omitempty"`
	AccountNumber   string   `json:"accountNumber,omitempty"`
	IFSC            string   `json:"ifsc,omitempty"`
	UPIID           string   `json:"upiId,omitempty"`
}

type CompanyProfile struct {
	CompanyName string `json:"companyName"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Size        string `json:"size,omitempty"`
	About       string `json:"about,omitempty"`
	Address     string `json:"address,omitempty"`
}
