package mappers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/companieshouse/orders-web/internal/filinghistory"
	"github.com/companieshouse/orders-web/internal/format"
	"github.com/companieshouse/orders-web/internal/govuk"
	"github.com/companieshouse/orders-web/internal/orders"
)

// ConfirmationPage is the full data bag for the order-confirmed page. All
// item kinds produce the same shape so the template treats them uniformly.
type ConfirmationPage struct {
	ServiceURL          string
	ServiceName         string
	TitleText           string
	PageTitle           string
	WhatHappensNextText string
	WhatHappensNextHTML string
	OrderDetailsTable   []govuk.Row
	DocumentDetails     []DocumentRow
}

// DocumentRow is one filing-history entry in the document-details table on
// certified copy confirmations.
type DocumentRow struct {
	Date        string
	Type        string
	Description string
	Fee         string
}

// Additional row keys used beyond the certificate detail table.
const (
	keyDeliveryMethod  = "Delivery method"
	keyDeliveryAddress = "Delivery address"
	keyEmailCopy       = "Email copy required"
	keyFee             = "Fee"
	keyDate            = "Date"
	keyType            = "Type"
	keyDescription     = "Description"
)

var ugcPolicy = bluemonday.UGCPolicy()

// Fixed "what happens next" copy for missing image deliveries, authored as
// markdown and rendered once at startup.
const missingImageWhatHappensNext = `It can take us several hours to check the availability of a document. We will aim to add it to a company's filing history the same working day if the request is received before 3pm, Monday to Friday (excluding bank holidays).

If the request is received after 3pm, the document will be added the next working day.

If we cannot add the document to the filing history, we will contact you to issue a refund.`

var missingImageWhatHappensNextHTML = mustRenderMarkdown(missingImageWhatHappensNext)

func mustRenderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		panic(fmt.Sprintf("mappers: render markdown: %v", err))
	}
	return strings.TrimSpace(ugcPolicy.Sanitize(buf.String()))
}

// MapItem builds the confirmation page for a single paid item. Dispatch is
// purely on item kind; certificates additionally branch on certificate
// type, with only incorporation-with-all-name-changes routed through the
// detail-mapper factory.
func MapItem(item orders.Item, delivery *orders.DeliveryDetails, cfg Config) (ConfirmationPage, error) {
	switch item.Kind {
	case orders.KindCertificate:
		return mapCertificateConfirmation(item, delivery, cfg), nil
	case orders.KindCertifiedCopy:
		return mapCertifiedCopyConfirmation(item, delivery, cfg), nil
	case orders.KindMissingImageDelivery:
		return mapMissingImageConfirmation(item), nil
	default:
		return ConfirmationPage{}, fmt.Errorf("Unknown item type: [%s]", item.Kind)
	}
}

func mapCertificateConfirmation(item orders.Item, delivery *orders.DeliveryDetails, cfg Config) ConfirmationPage {
	opts := item.CertificateOptions
	if opts == nil {
		opts = &orders.CertificateItemOptions{}
	}

	var table []govuk.Row
	if opts.CertificateType == orders.CertificateTypeIncorporation {
		mapper := NewFactory(cfg.Flags).MapperFor(opts.CompanyType, opts.CompanyStatus)
		table = mapper.OrdersDetailTable(item)
		table = append(table,
			deliveryMethodRow(opts.DeliveryTimescale, cfg.DispatchDays),
			deliveryAddressRow(delivery),
			feeRow(item.TotalItemCost),
		)
	} else {
		// Dissolution and the remaining certificate types carry no officer
		// or address options, so the table is assembled inline.
		table = append(certificateCommonRows(item),
			deliveryMethodRow(opts.DeliveryTimescale, cfg.DispatchDays),
			textRow(keyEmailCopy, "emailCopyRequiredValue", format.EmailCopyRequired(opts)),
			deliveryAddressRow(delivery),
		)
	}

	happensNext := "We aim to send out standard orders within " + cfg.DispatchDays + " working days."
	if opts.DeliveryTimescale == orders.DeliveryTimescaleSameDay {
		happensNext = "Orders received before 11am will be sent out the same working day. Orders received after 11am will be sent out the next working day."
	}

	return ConfirmationPage{
		ServiceURL:          fmt.Sprintf("/company/%s/orderable/certificates", item.CompanyNumber),
		ServiceName:         "Order a certificate",
		TitleText:           "Certificate ordered",
		PageTitle:           "Certificate ordered confirmation",
		WhatHappensNextText: happensNext,
		OrderDetailsTable:   table,
	}
}

func mapCertifiedCopyConfirmation(item orders.Item, delivery *orders.DeliveryDetails, cfg Config) ConfirmationPage {
	opts := item.CertifiedCopyOptions
	if opts == nil {
		opts = &orders.CertifiedCopyItemOptions{}
	}

	table := []govuk.Row{
		textRow(keyCompanyName, "companyNameValue", item.CompanyName),
		textRow(keyCompanyNumber, "companyNumberValue", item.CompanyNumber),
		deliveryMethodRow(opts.DeliveryTimescale, cfg.DispatchDays),
		deliveryAddressRow(delivery),
	}

	return ConfirmationPage{
		ServiceURL:          fmt.Sprintf("/company/%s/orderable/certified-copies", item.CompanyNumber),
		ServiceName:         "Order a certified document",
		TitleText:           "Certified document order confirmed",
		PageTitle:           "Certified document order confirmation",
		WhatHappensNextText: "We aim to send out certified document orders within " + cfg.DispatchDays + " working days.",
		OrderDetailsTable:   table,
		DocumentDetails:     documentRows(opts.FilingHistoryDocuments),
	}
}

func mapMissingImageConfirmation(item orders.Item) ConfirmationPage {
	opts := item.MissingImageDeliveryOptions
	if opts == nil {
		opts = &orders.MissingImageDeliveryItemOptions{}
	}

	table := []govuk.Row{
		textRow(keyCompanyName, "companyNameValue", item.CompanyName),
		textRow(keyCompanyNumber, "companyNumberValue", item.CompanyNumber),
		textRow(keyDate, "filingHistoryDateValue", filingHistoryDateText(opts.FilingHistoryDate)),
		textRow(keyType, "filingHistoryTypeValue", opts.FilingHistoryType),
		textRow(keyDescription, "filingHistoryDescriptionValue",
			filinghistory.Describe(opts.FilingHistoryDescription, opts.FilingHistoryValues)),
	}

	return ConfirmationPage{
		ServiceURL:          fmt.Sprintf("/company/%s/orderable/missing-image-deliveries", item.CompanyNumber),
		ServiceName:         "Request a document",
		TitleText:           "Document Requested",
		PageTitle:           "Document Requested",
		WhatHappensNextHTML: missingImageWhatHappensNextHTML,
		OrderDetailsTable:   table,
	}
}

// documentRows resolves each filing-history entry into a display row,
// preserving input order.
func documentRows(docs []orders.FilingHistoryDocument) []DocumentRow {
	rows := make([]DocumentRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, DocumentRow{
			Date:        filingHistoryDateText(doc.Date),
			Type:        doc.Type,
			Description: filinghistory.Describe(doc.Description, doc.DescriptionValues),
			Fee:         format.Currency(doc.Cost),
		})
	}
	return rows
}

// filingHistoryDateText renders a filing date, falling back to the raw
// string when it does not parse.
func filingHistoryDateText(raw string) string {
	if t, ok := format.ParseDate(raw); ok {
		return format.Date(t)
	}
	return raw
}

func deliveryMethodRow(timescale, dispatchDays string) govuk.Row {
	return textRow(keyDeliveryMethod, "deliveryMethodValue", format.DeliveryMethod(timescale, dispatchDays))
}

func deliveryAddressRow(delivery *orders.DeliveryDetails) govuk.Row {
	return htmlRow(keyDeliveryAddress, "deliveryAddressValue", format.ToHTML(delivery.Lines()))
}

func feeRow(cost string) govuk.Row {
	return textRow(keyFee, "feeValue", format.Currency(cost))
}
