package forms

import "github.com/tropicacao/leads-api/internal/models"

// Product wire codes (liqueur, beurre, poudre, tourteau, grue, masse, other)
// use the commercial French labels because the forms predate the English site.

// QuoteForm is a request for a price quote on a product.
type QuoteForm struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Company   string `json:"company" validate:"required,min=2,max=100"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	Product   string `json:"product" validate:"required,oneof=liqueur beurre poudre tourteau grue masse other"`
	Quantity  string `json:"quantity" validate:"required,min=1,max=50"`
	Incoterm  string `json:"incoterm" validate:"omitempty,oneof=FOB CIF CFR EXW FCA other"`
	Message   string `json:"message" validate:"omitempty,min=10,max=1000"`
}

// SampleForm is a request for a physical product sample.
type SampleForm struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=100"`
	LastName        string `json:"lastName" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Company         string `json:"company" validate:"required,min=2,max=100"`
	Country         string `json:"country" validate:"omitempty,max=100"`
	Product         string `json:"product" validate:"required,oneof=liqueur beurre poudre tourteau grue masse other"`
	Purpose         string `json:"purpose" validate:"required,min=5,max=200"`
	ShippingAddress string `json:"shippingAddress" validate:"required,min=10,max=300"`
	Message         string `json:"message" validate:"omitempty,min=10,max=1000"`
}

// SpecsForm is a request for technical specification sheets.
type SpecsForm struct {
	FirstName      string `json:"firstName" validate:"required,min=2,max=100"`
	LastName       string `json:"lastName" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
	Company        string `json:"company" validate:"required,min=2,max=100"`
	Country        string `json:"country" validate:"omitempty,max=100"`
	Product        string `json:"product" validate:"required,oneof=liqueur beurre poudre tourteau grue masse other"`
	Application    string `json:"application" validate:"required,min=3,max=200"`
	Certifications string `json:"certifications" validate:"omitempty,max=500"`
	Message        string `json:"message" validate:"omitempty,min=10,max=1000"`
}

// PartnershipForm is a distribution or sourcing partnership inquiry.
type PartnershipForm struct {
	FirstName       string `json:"firstName" validate:"required,min=2,max=100"`
	LastName        string `json:"lastName" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Company         string `json:"company" validate:"required,min=2,max=100"`
	Country         string `json:"country" validate:"omitempty,max=100"`
	PartnershipType string `json:"partnershipType" validate:"required,oneof=distributor agent importer private_label other"`
	AnnualVolume    string `json:"annualVolume" validate:"required,min=1,max=50"`
	Message         string `json:"message" validate:"omitempty,min=10,max=1000"`
}

// TransitForm is a freight-forwarding / transit service inquiry.
type TransitForm struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=100"`
	LastName    string `json:"lastName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	Company     string `json:"company" validate:"required,min=2,max=100"`
	Country     string `json:"country" validate:"omitempty,max=100"`
	Commodity   string `json:"commodity" validate:"required,min=2,max=100"`
	Origin      string `json:"origin" validate:"required,min=2,max=100"`
	Destination string `json:"destination" validate:"required,min=2,max=100"`
	Volume      string `json:"volume" validate:"required,min=1,max=50"`
	Message     string `json:"message" validate:"omitempty,min=10,max=1000"`
}

// ContactForm is the general contact form.
type ContactForm struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=100"`
	LastName  string `json:"lastName" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Company   string `json:"company" validate:"required,min=2,max=100"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	Subject   string `json:"subject" validate:"required,min=3,max=200"`
	Message   string `json:"message" validate:"required,min=10,max=1000"`
}

// QCForm is a quality-control / documentation inquiry. Names are optional
// here: QC requests often come from lab mailboxes rather than individuals.
type QCForm struct {
	FirstName string `json:"firstName" validate:"omitempty,min=2,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`
	Company   string `json:"company" validate:"required,min=2,max=100"`
	Country   string `json:"country" validate:"omitempty,max=100"`
	Product   string `json:"product" validate:"required,oneof=liqueur beurre poudre tourteau grue masse other"`
	Topic     string `json:"topic" validate:"required,oneof=specs coa compliance custom other"`
	Message   string `json:"message" validate:"required,min=10,max=1000"`
}

// newForm returns a zero value of the typed form for a given form type.
func newForm(ft models.FormType) any {
	switch ft {
	case models.FormTypeQuote:
		return &QuoteForm{}
	case models.FormTypeSample:
		return &SampleForm{}
	case models.FormTypeSpecs:
		return &SpecsForm{}
	case models.FormTypePartnership:
		return &PartnershipForm{}
	case models.FormTypeTransit:
		return &TransitForm{}
	case models.FormTypeContact:
		return &ContactForm{}
	case models.FormTypeQC:
		return &QCForm{}
	default:
		return nil
	}
}
