package models

type CompanyProfile struct {
	CompanyName string `json:"companyName" bson:"companyName"`
	Website     string `json:"website,omitempty" bson:"website,omitempty"`
	Industry    string `json:"industry,omitempty" bson:"industry,omitempty"`
	Size        string `json:"size,omitempty" bson:"size,omitempty"`
	About       string `json:"about,omitempty" bson:"about,omitempty"`
	Address     string `json:"address,omitempty" bson:"address,omitempty"`
	TimeModel   `bson:",inline"`
}
