// Package format holds the pure text-formatting rules shared by every item
// mapper. Certificate option text, delivery copy, currency and date output
// all live here so the mappers agree on a single rendering of each field.
package format

import (
	"html"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/companieshouse/orders-web/internal/orders"
)

var logger = zap.NewNop()

// SetLogger installs the process logger. Mapping stays pure; the logger is
// only used for non-fatal data-quality warnings.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// CertificateType maps a certificate type code to its display text.
// Empty input maps to empty output; unknown codes are prettified rather
// than rejected.
func CertificateType(code string) string {
	switch code {
	case "":
		return ""
	case orders.CertificateTypeIncorporation:
		return "Incorporation with all company name changes"
	case orders.CertificateTypeDissolution:
		return "Dissolution with all company name changes"
	}
	text := strings.ReplaceAll(code, "-", " ")
	r := []rune(text)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// SelectedText renders an inclusion flag. The flag being present at all
// means the option was selected, so an explicit false still reads "Yes";
// only an absent flag reads "No".
func SelectedText(flag *bool) string {
	if flag == nil {
		return "No"
	}
	return "Yes"
}

// Address option phrases keyed by includeAddressRecordsType.
var addressOptionText = map[string]string{
	"current":                    "Current address",
	"current-and-previous":       "Current address and the one previous",
	"current-previous-and-prior": "Current address and the two previous",
	"all":                        "All current and previous addresses",
}

// AddressOptions renders the address-scope selection for a certificate.
// An unrecognised record type is a data-quality issue, not a failure: the
// upstream enum is expected to grow, so it is logged and rendered empty.
func AddressOptions(details *orders.AddressDetails) string {
	if details == nil || details.IncludeAddressRecordsType == "" {
		return "No"
	}
	if text, ok := addressOptionText[details.IncludeAddressRecordsType]; ok {
		return text
	}
	logger.Warn("unmapped address records type",
		zap.String("includeAddressRecordsType", details.IncludeAddressRecordsType))
	return ""
}

// DeliveryMethod renders delivery copy for a timescale. dispatchDays is the
// configured DISPATCH_DAYS value, interpolated verbatim.
func DeliveryMethod(timescale, dispatchDays string) string {
	switch timescale {
	case orders.DeliveryTimescaleStandard:
		return "Standard delivery (aim to dispatch within " + dispatchDays + " working days)"
	case orders.DeliveryTimescaleSameDay:
		return "Same Day"
	default:
		return ""
	}
}

// EmailCopyRequired renders the email-copy row for a certificate. Email
// copies are only offered on same-day orders.
func EmailCopyRequired(opts *orders.CertificateItemOptions) string {
	if opts != nil && opts.DeliveryTimescale == orders.DeliveryTimescaleSameDay {
		return SelectedText(opts.IncludeEmailCopy)
	}
	return "Email only available for same day orders"
}

// ToHTML escapes each line and joins them with <br> breaks. It is used both
// for safety (free-text company and recipient names) and for layout.
func ToHTML(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(html.EscapeString(line))
		b.WriteString("<br>")
	}
	return b.String()
}

// Bullet labels for officer sub-fields, in officer display order.
const (
	labelAddress            = "Correspondence address"
	labelOccupation         = "Occupation"
	labelDOB                = "Date of birth (month and year)"
	labelAppointmentDate    = "Appointment date"
	labelNationality        = "Nationality"
	labelCountryOfResidence = "Country of residence"
)

const dobTypePartial = "partial"

// OfficerOptionsText renders the directors/secretaries row. role is the
// plural role label, e.g. "directors". With basic information alone the row
// reads "Yes"; any sub-field selection expands into a <br>-separated list
// headed "Including {role}':".
func OfficerOptionsText(details *orders.OfficerDetails, role string) string {
	if !details.BasicInformation() {
		return "No"
	}
	var fields []string
	if details.IncludeAddress {
		fields = append(fields, labelAddress)
	}
	if details.IncludeOccupation {
		fields = append(fields, labelOccupation)
	}
	if details.IncludeDobType == dobTypePartial {
		fields = append(fields, labelDOB)
	}
	if details.IncludeAppointmentDate {
		fields = append(fields, labelAppointmentDate)
	}
	if details.IncludeNationality {
		fields = append(fields, labelNationality)
	}
	if details.IncludeCountryOfResidence {
		fields = append(fields, labelCountryOfResidence)
	}
	if len(fields) == 0 {
		return "Yes"
	}
	return ToHTML(append([]string{"Including " + role + "':"}, fields...))
}

// MemberOptionsText renders the members/designated-members row. It shares
// the officer row's shape but lists fields in the member display order and
// takes the full heading from the caller.
func MemberOptionsText(details *orders.OfficerDetails, heading string) string {
	if !details.BasicInformation() {
		return "No"
	}
	var fields []string
	if details.IncludeAddress {
		fields = append(fields, labelAddress)
	}
	if details.IncludeAppointmentDate {
		fields = append(fields, labelAppointmentDate)
	}
	if details.IncludeCountryOfResidence {
		fields = append(fields, labelCountryOfResidence)
	}
	if details.IncludeDobType == dobTypePartial {
		fields = append(fields, labelDOB)
	}
	if len(fields) == 0 {
		return "Yes"
	}
	return ToHTML(append([]string{heading}, fields...))
}

// Currency prefixes a raw cost string with a pound sign. Costs are opaque
// decimal strings end to end; no rounding or locale handling is applied.
func Currency(amount string) string {
	return "£" + amount
}

// Date renders a filing-history date, short month form.
func Date(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FullDate renders a date in long month form, used inside resolved
// filing-history descriptions.
func FullDate(t time.Time) string {
	return t.Format("02 January 2006")
}

// DateTime renders a confirmation timestamp.
func DateTime(t time.Time) string {
	return t.Format("02 January 2006 - 15:04:05")
}

// ParseDate parses the yyyy-mm-dd dates carried on filing-history records.
// Zero time on failure; callers render the raw string in that case.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
