// Package orders models the basket, checkout and order resources served by
// the orders API, plus the client used to fetch them.
package orders

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Item kinds as they appear on the wire.
const (
	KindCertificate          = "item#certificate"
	KindCertifiedCopy        = "item#certified-copy"
	KindMissingImageDelivery = "item#missing-image-delivery"
)

// Certificate types with dedicated handling.
const (
	CertificateTypeIncorporation = "incorporation-with-all-name-changes"
	CertificateTypeDissolution   = "dissolution"
)

// Company types and statuses the certificate mappers branch on.
const (
	CompanyTypeLLP = "llp"
	CompanyTypeLP  = "limited-partnership"

	CompanyStatusActive         = "active"
	CompanyStatusLiquidation    = "liquidation"
	CompanyStatusAdministration = "administration"
)

// Delivery timescales.
const (
	DeliveryTimescaleStandard = "standard"
	DeliveryTimescaleSameDay  = "same-day"
)

// Item is a single purchasable line in a basket, checkout or order.
// Exactly one of the option structs is populated, according to Kind.
type Item struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	CompanyName   string `json:"companyName"`
	CompanyNumber string `json:"companyNumber"`
	Quantity      int    `json:"quantity"`
	TotalItemCost string `json:"totalItemCost"`
	ItemURI       string `json:"itemUri,omitempty"`

	CertificateOptions          *CertificateItemOptions          `json:"-"`
	CertifiedCopyOptions        *CertifiedCopyItemOptions        `json:"-"`
	MissingImageDeliveryOptions *MissingImageDeliveryItemOptions `json:"-"`
}

// itemEnvelope mirrors the wire shape, deferring itemOptions until Kind is known.
type itemEnvelope struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	CompanyName   string          `json:"companyName"`
	CompanyNumber string          `json:"companyNumber"`
	Quantity      int             `json:"quantity"`
	TotalItemCost string          `json:"totalItemCost"`
	ItemURI       string          `json:"itemUri"`
	ItemOptions   json.RawMessage `json:"itemOptions"`
}

// UnmarshalJSON decodes itemOptions into the struct matching the item kind.
// Unrecognised kinds keep their metadata but carry no options; the mapping
// layer decides whether that is fatal.
func (i *Item) UnmarshalJSON(data []byte) error {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	i.ID = env.ID
	i.Kind = env.Kind
	i.CompanyName = env.CompanyName
	i.CompanyNumber = env.CompanyNumber
	i.Quantity = env.Quantity
	i.TotalItemCost = env.TotalItemCost
	i.ItemURI = env.ItemURI
	if len(env.ItemOptions) == 0 {
		return nil
	}
	switch env.Kind {
	case KindCertificate:
		i.CertificateOptions = &CertificateItemOptions{}
		if err := json.Unmarshal(env.ItemOptions, i.CertificateOptions); err != nil {
			return fmt.Errorf("orders: decode certificate options: %w", err)
		}
	case KindCertifiedCopy:
		i.CertifiedCopyOptions = &CertifiedCopyItemOptions{}
		if err := json.Unmarshal(env.ItemOptions, i.CertifiedCopyOptions); err != nil {
			return fmt.Errorf("orders: decode certified copy options: %w", err)
		}
	case KindMissingImageDelivery:
		i.MissingImageDeliveryOptions = &MissingImageDeliveryItemOptions{}
		if err := json.Unmarshal(env.ItemOptions, i.MissingImageDeliveryOptions); err != nil {
			return fmt.Errorf("orders: decode missing image delivery options: %w", err)
		}
	}
	return nil
}

// Deliverable reports whether the item is dispatched by post.
// Missing image deliveries are fulfilled digitally.
func (i Item) Deliverable() bool {
	return i.Kind == KindCertificate || i.Kind == KindCertifiedCopy
}

// DeliveryTimescale returns the item's delivery timescale, if it has one.
func (i Item) DeliveryTimescale() string {
	switch {
	case i.CertificateOptions != nil:
		return i.CertificateOptions.DeliveryTimescale
	case i.CertifiedCopyOptions != nil:
		return i.CertifiedCopyOptions.DeliveryTimescale
	default:
		return ""
	}
}

// CertificateItemOptions carries the option set for certificate items.
// Inclusion flags are pointers: the upstream API distinguishes an omitted
// flag from an explicit false, and the mapped text depends on that
// distinction rather than on truthiness.
type CertificateItemOptions struct {
	CertificateType   string `json:"certificateType"`
	CompanyType       string `json:"companyType"`
	CompanyStatus     string `json:"companyStatus"`
	DeliveryTimescale string `json:"deliveryTimescale"`
	DeliveryMethod    string `json:"deliveryMethod,omitempty"`

	IncludeEmailCopy                          *bool `json:"includeEmailCopy,omitempty"`
	IncludeGoodStandingInformation            *bool `json:"includeGoodStandingInformation,omitempty"`
	IncludeCompanyObjectsInformation          *bool `json:"includeCompanyObjectsInformation,omitempty"`
	IncludeGeneralNatureOfBusinessInformation *bool `json:"includeGeneralNatureOfBusinessInformation,omitempty"`

	RegisteredOfficeAddressDetails  *AddressDetails `json:"registeredOfficeAddressDetails,omitempty"`
	PrincipalPlaceOfBusinessDetails *AddressDetails `json:"principalPlaceOfBusinessDetails,omitempty"`

	DirectorDetails         *OfficerDetails `json:"directorDetails,omitempty"`
	SecretaryDetails        *OfficerDetails `json:"secretaryDetails,omitempty"`
	DesignatedMemberDetails *OfficerDetails `json:"designatedMemberDetails,omitempty"`
	MemberDetails           *OfficerDetails `json:"memberDetails,omitempty"`
	GeneralPartnerDetails   *OfficerDetails `json:"generalPartnerDetails,omitempty"`
	LimitedPartnerDetails   *OfficerDetails `json:"limitedPartnerDetails,omitempty"`
	AdministratorsDetails   *OfficerDetails `json:"administratorsDetails,omitempty"`
	LiquidatorsDetails      *OfficerDetails `json:"liquidatorsDetails,omitempty"`
}

// AddressDetails scopes which address records a certificate should include.
type AddressDetails struct {
	IncludeAddressRecordsType string `json:"includeAddressRecordsType,omitempty"`
	IncludeDates              bool   `json:"includeDates,omitempty"`
}

// OfficerDetails selects which officer (or member/partner) fields appear on
// a certificate. IncludeBasicInformation keeps pointer semantics for the
// same defined-vs-false reason as the item-level flags.
type OfficerDetails struct {
	IncludeBasicInformation   *bool  `json:"includeBasicInformation,omitempty"`
	IncludeAddress            bool   `json:"includeAddress,omitempty"`
	IncludeAppointmentDate    bool   `json:"includeAppointmentDate,omitempty"`
	IncludeCountryOfResidence bool   `json:"includeCountryOfResidence,omitempty"`
	IncludeDobType            string `json:"includeDobType,omitempty"`
	IncludeNationality        bool   `json:"includeNationality,omitempty"`
	IncludeOccupation         bool   `json:"includeOccupation,omitempty"`
}

// BasicInformation reports whether basic information is requested at all.
func (d *OfficerDetails) BasicInformation() bool {
	return d != nil && d.IncludeBasicInformation != nil && *d.IncludeBasicInformation
}

// CertifiedCopyItemOptions lists the filings a certified copy reproduces.
type CertifiedCopyItemOptions struct {
	DeliveryTimescale      string                 `json:"deliveryTimescale"`
	DeliveryMethod         string                 `json:"deliveryMethod,omitempty"`
	FilingHistoryDocuments []FilingHistoryDocument `json:"filingHistoryDocuments"`
}

// MissingImageDeliveryItemOptions identifies the single filing whose image
// is being retrieved.
type MissingImageDeliveryItemOptions struct {
	FilingHistoryDate        string         `json:"filingHistoryDate"`
	FilingHistoryType        string         `json:"filingHistoryType"`
	FilingHistoryDescription string         `json:"filingHistoryDescription"`
	FilingHistoryValues      map[string]any `json:"filingHistoryDescriptionValues"`
	FilingHistoryID          string         `json:"filingHistoryId"`
}

// FilingHistoryDocument is one historical filing referenced by an item.
type FilingHistoryDocument struct {
	Date              string         `json:"filingHistoryDate"`
	Type              string         `json:"filingHistoryType"`
	Description       string         `json:"filingHistoryDescription"`
	DescriptionValues map[string]any `json:"filingHistoryDescriptionValues"`
	Cost              string         `json:"filingHistoryCost"`
	ID                string         `json:"filingHistoryId"`
}

// DeliveryDetails is the dispatch address captured at checkout.
type DeliveryDetails struct {
	Forename     string `json:"forename"`
	Surname      string `json:"surname"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Locality     string `json:"locality"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country"`
	POBox        string `json:"poBox,omitempty"`
}

// Lines returns the populated address lines in display order.
func (d *DeliveryDetails) Lines() []string {
	if d == nil {
		return nil
	}
	candidates := []string{
		strings.TrimSpace(d.Forename + " " + d.Surname),
		d.AddressLine1,
		d.AddressLine2,
		d.POBox,
		d.Locality,
		d.Region,
		d.PostalCode,
		d.Country,
	}
	lines := make([]string, 0, len(candidates))
	for _, line := range candidates {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Basket is the current, un-paid item collection for a session.
type Basket struct {
	Items           []Item           `json:"items"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails,omitempty"`
	TotalBasketCost string           `json:"totalBasketCost,omitempty"`
}

// Checkout is a basket snapshot captured at payment time.
type Checkout struct {
	Reference        string           `json:"reference"`
	PaidAt           time.Time        `json:"paidAt"`
	PaymentReference string           `json:"paymentReference"`
	TotalOrderCost   string           `json:"totalOrderCost"`
	DeliveryDetails  *DeliveryDetails `json:"deliveryDetails,omitempty"`
	Items            []Item           `json:"items"`
}

// Order is a completed, paid checkout.
type Order struct {
	Reference        string           `json:"reference"`
	OrderedAt        time.Time        `json:"orderedAt"`
	PaymentReference string           `json:"paymentReference"`
	TotalOrderCost   string           `json:"totalOrderCost"`
	DeliveryDetails  *DeliveryDetails `json:"deliveryDetails,omitempty"`
	Items            []Item           `json:"items"`
}
