// Package mappers converts order items into the view-model structures the
// templates render: certificate detail tables, confirmation pages, and
// basket/order summaries.
package mappers

import (
	"fmt"
	"html"

	"github.com/companieshouse/orders-web/internal/config"
	"github.com/companieshouse/orders-web/internal/format"
	"github.com/companieshouse/orders-web/internal/govuk"
	"github.com/companieshouse/orders-web/internal/orders"
)

// Config carries the immutable inputs mapping depends on. It is assembled
// once at startup and passed by value; mapping calls stay pure.
type Config struct {
	DispatchDays string
	Flags        config.FeatureFlags
}

// Row key text used across the certificate detail tables.
const (
	keyCompanyName             = "Company name"
	keyCompanyNumber           = "Company number"
	keyCertificateType         = "Certificate type"
	keyGoodStanding            = "Statement of good standing"
	keyRegisteredOffice        = "Registered office address"
	keyDirectors               = "The names of all current company directors"
	keySecretaries             = "The names of all current company secretaries"
	keyCompanyObjects          = "Company objects"
	keyDesignatedMembers       = "The names of all current designated members"
	keyMembers                 = "The names of all current members"
	keyPrincipalPlace          = "Principal place of business"
	keyGeneralPartners         = "General partners"
	keyLimitedPartners         = "Limited partners"
	keyGeneralNatureOfBusiness = "General nature of business"
	keyLiquidators             = "Liquidators' details"
	keyAdministrators          = "Administrators' details"
)

// Member list headings.
const (
	headingDesignatedMembers = "Including designated members':"
	headingMembers           = "Including members':"
)

// textRow wraps a plain-text value in the identified fragment the templates
// and downstream selectors rely on. The id attribute is part of the output
// contract.
func textRow(key, id, text string) govuk.Row {
	return govuk.HTMLRow(key, fmt.Sprintf(`<p id="%s">%s</p>`, id, html.EscapeString(text)))
}

// htmlRow wraps an already-escaped HTML fragment, e.g. a <br>-joined list.
func htmlRow(key, id, fragment string) govuk.Row {
	return govuk.HTMLRow(key, fmt.Sprintf(`<p id="%s">%s</p>`, id, fragment))
}

// certificateVariant names one entry in the closed set of certificate
// detail mappers. Selection is an explicit match on company type, status
// and feature flags; see Factory.
type certificateVariant int

const (
	variantOther certificateVariant = iota
	variantLLP
	variantLP
	variantLiquidatedOther
	variantLiquidatedLLP
	variantAdministratedOther
	variantAdministratedLLP
)

var variantNames = map[certificateVariant]string{
	variantOther:              "other",
	variantLLP:                "llp",
	variantLP:                 "lp",
	variantLiquidatedOther:    "liquidated-other",
	variantLiquidatedLLP:      "liquidated-llp",
	variantAdministratedOther: "administrated-other",
	variantAdministratedLLP:   "administrated-llp",
}

// CertificateMapper renders the certificate details table for one company
// type/status combination.
type CertificateMapper struct {
	variant certificateVariant
}

// Name identifies the selected variant; the factory tests assert on it.
func (m CertificateMapper) Name() string {
	return variantNames[m.variant]
}

// OrdersDetailTable builds the full ordered detail table for a certificate
// item: the three common rows followed by the variant-specific rows.
func (m CertificateMapper) OrdersDetailTable(item orders.Item) []govuk.Row {
	return append(certificateCommonRows(item), m.OptionRows(item.CertificateOptions)...)
}

// certificateCommonRows builds the rows every certificate table starts with.
func certificateCommonRows(item orders.Item) []govuk.Row {
	certType := ""
	if item.CertificateOptions != nil {
		certType = item.CertificateOptions.CertificateType
	}
	return []govuk.Row{
		textRow(keyCompanyName, "companyNameValue", item.CompanyName),
		textRow(keyCompanyNumber, "companyNumberValue", item.CompanyNumber),
		textRow(keyCertificateType, "certificateTypeValue", format.CertificateType(certType)),
	}
}

// OptionRows builds the variant-specific rows that follow the common rows.
// Row order within each variant is fixed.
func (m CertificateMapper) OptionRows(opts *orders.CertificateItemOptions) []govuk.Row {
	if opts == nil {
		opts = &orders.CertificateItemOptions{}
	}
	switch m.variant {
	case variantLLP:
		return []govuk.Row{
			goodStandingRow(opts),
			registeredOfficeRow(opts),
			designatedMembersRow(opts),
			membersRow(opts),
		}
	case variantLP:
		return []govuk.Row{
			goodStandingRow(opts),
			principalPlaceRow(opts),
			generalPartnersRow(opts),
			limitedPartnersRow(opts),
			generalNatureOfBusinessRow(opts),
		}
	case variantLiquidatedOther:
		return []govuk.Row{
			registeredOfficeRow(opts),
			directorsRow(opts),
			secretariesRow(opts),
			companyObjectsRow(opts),
			liquidatorsRow(opts),
		}
	case variantLiquidatedLLP:
		return []govuk.Row{
			registeredOfficeRow(opts),
			designatedMembersRow(opts),
			membersRow(opts),
			liquidatorsRow(opts),
		}
	case variantAdministratedOther:
		return []govuk.Row{
			goodStandingRow(opts),
			registeredOfficeRow(opts),
			directorsRow(opts),
			secretariesRow(opts),
			companyObjectsRow(opts),
			administratorsRow(opts),
		}
	case variantAdministratedLLP:
		return []govuk.Row{
			goodStandingRow(opts),
			registeredOfficeRow(opts),
			designatedMembersRow(opts),
			membersRow(opts),
			administratorsRow(opts),
		}
	default:
		return []govuk.Row{
			goodStandingRow(opts),
			registeredOfficeRow(opts),
			directorsRow(opts),
			secretariesRow(opts),
			companyObjectsRow(opts),
		}
	}
}

func goodStandingRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyGoodStanding, "statementOfGoodStandingValue",
		format.SelectedText(opts.IncludeGoodStandingInformation))
}

func registeredOfficeRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyRegisteredOffice, "registeredOfficeAddressValue",
		format.AddressOptions(opts.RegisteredOfficeAddressDetails))
}

func principalPlaceRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyPrincipalPlace, "principalPlaceOfBusinessValue",
		format.AddressOptions(opts.PrincipalPlaceOfBusinessDetails))
}

func directorsRow(opts *orders.CertificateItemOptions) govuk.Row {
	return htmlRow(keyDirectors, "currentCompanyDirectorsNamesValue",
		format.OfficerOptionsText(opts.DirectorDetails, "directors"))
}

func secretariesRow(opts *orders.CertificateItemOptions) govuk.Row {
	return htmlRow(keySecretaries, "currentCompanySecretariesNamesValue",
		format.OfficerOptionsText(opts.SecretaryDetails, "secretaries"))
}

func companyObjectsRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyCompanyObjects, "companyObjectsValue",
		format.SelectedText(opts.IncludeCompanyObjectsInformation))
}

func designatedMembersRow(opts *orders.CertificateItemOptions) govuk.Row {
	return htmlRow(keyDesignatedMembers, "currentDesignatedMembersNamesValue",
		format.MemberOptionsText(opts.DesignatedMemberDetails, headingDesignatedMembers))
}

func membersRow(opts *orders.CertificateItemOptions) govuk.Row {
	return htmlRow(keyMembers, "currentMembersNamesValue",
		format.MemberOptionsText(opts.MemberDetails, headingMembers))
}

func generalPartnersRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyGeneralPartners, "generalPartnersValue",
		format.SelectedText(basicInformationFlag(opts.GeneralPartnerDetails)))
}

func limitedPartnersRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyLimitedPartners, "limitedPartnersValue",
		format.SelectedText(basicInformationFlag(opts.LimitedPartnerDetails)))
}

func generalNatureOfBusinessRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyGeneralNatureOfBusiness, "generalNatureOfBusinessValue",
		format.SelectedText(opts.IncludeGeneralNatureOfBusinessInformation))
}

func liquidatorsRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyLiquidators, "liquidatorsValue",
		format.SelectedText(basicInformationFlag(opts.LiquidatorsDetails)))
}

func administratorsRow(opts *orders.CertificateItemOptions) govuk.Row {
	return textRow(keyAdministrators, "administratorsValue",
		format.SelectedText(basicInformationFlag(opts.AdministratorsDetails)))
}

// basicInformationFlag lifts the nested include-basic-information pointer,
// preserving absence when the details block itself is missing.
func basicInformationFlag(details *orders.OfficerDetails) *bool {
	if details == nil {
		return nil
	}
	return details.IncludeBasicInformation
}
