package mappers

import (
	"fmt"

	"github.com/companieshouse/orders-web/internal/filinghistory"
	"github.com/companieshouse/orders-web/internal/format"
	"github.com/companieshouse/orders-web/internal/govuk"
	"github.com/companieshouse/orders-web/internal/orders"
)

// ItemRow is one line in a basket or order-summary listing.
type ItemRow struct {
	ItemID         string
	CompanyNumber  string
	Description    string
	DateFiled      string
	DeliveryMethod string
	Cost           string
	ViewHref       string
}

// itemGroups accumulates the shared state basket and order-summary pages
// both need: per-kind row buckets, the running total, delivery booleans and
// the once-populated delivery-details table.
type itemGroups struct {
	Certificates           []ItemRow
	CertifiedCopies        []ItemRow
	MissingImageDeliveries []ItemRow

	TotalItemCost        int
	ItemCount            int
	HasStandardDelivery  bool
	HasSameDayDelivery   bool
	HasDeliverableItems  bool
	DeliveryDetailsTable []govuk.Row
}

// BasketView drives the basket page.
type BasketView struct {
	itemGroups
	TotalText string
}

// OrderSummaryView drives the order summary page.
type OrderSummaryView struct {
	itemGroups
	Reference        string
	OrderedAtText    string
	PaymentReference string
	TotalOrderCost   string
}

// MapBasket classifies every basket item into its kind bucket and
// accumulates totals. An unrecognised kind aborts the whole mapping;
// partial results are never returned.
func MapBasket(basket orders.Basket, cfg Config) (BasketView, error) {
	groups, err := accumulateItems(basket.Items, basket.DeliveryDetails, cfg)
	if err != nil {
		return BasketView{}, err
	}
	return BasketView{
		itemGroups: groups,
		TotalText:  format.Currency(fmt.Sprintf("%d", groups.TotalItemCost)),
	}, nil
}

// MapOrderSummary builds the order summary page for a completed order.
func MapOrderSummary(order orders.Order, cfg Config) (OrderSummaryView, error) {
	groups, err := accumulateItems(order.Items, order.DeliveryDetails, cfg)
	if err != nil {
		return OrderSummaryView{}, err
	}
	return OrderSummaryView{
		itemGroups:       groups,
		Reference:        order.Reference,
		OrderedAtText:    format.DateTime(order.OrderedAt),
		PaymentReference: order.PaymentReference,
		TotalOrderCost:   format.Currency(order.TotalOrderCost),
	}, nil
}

func accumulateItems(items []orders.Item, delivery *orders.DeliveryDetails, cfg Config) (itemGroups, error) {
	var groups itemGroups
	for _, item := range items {
		switch item.Kind {
		case orders.KindCertificate:
			groups.Certificates = append(groups.Certificates, certificateItemRow(item, cfg))
		case orders.KindCertifiedCopy:
			groups.CertifiedCopies = append(groups.CertifiedCopies, certifiedCopyItemRows(item, cfg)...)
		case orders.KindMissingImageDelivery:
			groups.MissingImageDeliveries = append(groups.MissingImageDeliveries, missingImageItemRow(item))
		default:
			return itemGroups{}, fmt.Errorf("Unknown item type: [%s]", item.Kind)
		}

		groups.ItemCount++
		groups.TotalItemCost += costAsInt(item.TotalItemCost)

		switch item.DeliveryTimescale() {
		case orders.DeliveryTimescaleStandard:
			groups.HasStandardDelivery = true
		case orders.DeliveryTimescaleSameDay:
			groups.HasSameDayDelivery = true
		}
		if item.Deliverable() {
			groups.HasDeliverableItems = true
			// first deliverable item wins; later items never rebuild the table
			if groups.DeliveryDetailsTable == nil {
				groups.DeliveryDetailsTable = deliveryDetailsTable(delivery)
			}
		}
	}
	return groups, nil
}

func certificateItemRow(item orders.Item, cfg Config) ItemRow {
	opts := item.CertificateOptions
	if opts == nil {
		opts = &orders.CertificateItemOptions{}
	}
	return ItemRow{
		ItemID:         item.ID,
		CompanyNumber:  item.CompanyNumber,
		Description:    format.CertificateType(opts.CertificateType) + " certificate",
		DeliveryMethod: format.DeliveryMethod(opts.DeliveryTimescale, cfg.DispatchDays),
		Cost:           format.Currency(item.TotalItemCost),
		ViewHref:       item.ItemURI,
	}
}

// certifiedCopyItemRows emits one row per filing-history document, matching
// how the basket lists certified copies.
func certifiedCopyItemRows(item orders.Item, cfg Config) []ItemRow {
	opts := item.CertifiedCopyOptions
	if opts == nil {
		opts = &orders.CertifiedCopyItemOptions{}
	}
	rows := make([]ItemRow, 0, len(opts.FilingHistoryDocuments))
	for _, doc := range opts.FilingHistoryDocuments {
		rows = append(rows, ItemRow{
			ItemID:         item.ID,
			CompanyNumber:  item.CompanyNumber,
			Description:    filinghistory.Describe(doc.Description, doc.DescriptionValues),
			DateFiled:      filingHistoryDateText(doc.Date),
			DeliveryMethod: format.DeliveryMethod(opts.DeliveryTimescale, cfg.DispatchDays),
			Cost:           format.Currency(doc.Cost),
			ViewHref:       item.ItemURI,
		})
	}
	return rows
}

func missingImageItemRow(item orders.Item) ItemRow {
	opts := item.MissingImageDeliveryOptions
	if opts == nil {
		opts = &orders.MissingImageDeliveryItemOptions{}
	}
	return ItemRow{
		ItemID:        item.ID,
		CompanyNumber: item.CompanyNumber,
		Description:   filinghistory.Describe(opts.FilingHistoryDescription, opts.FilingHistoryValues),
		DateFiled:     filingHistoryDateText(opts.FilingHistoryDate),
		Cost:          format.Currency(item.TotalItemCost),
		ViewHref:      item.ItemURI,
	}
}

func deliveryDetailsTable(delivery *orders.DeliveryDetails) []govuk.Row {
	if delivery == nil {
		return []govuk.Row{}
	}
	return []govuk.Row{
		textRow("Name", "deliveryDetailsNameValue", delivery.Forename+" "+delivery.Surname),
		htmlRow("Address", "deliveryDetailsAddressValue", format.ToHTML(addressLines(delivery))),
	}
}

func addressLines(d *orders.DeliveryDetails) []string {
	candidates := []string{
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
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// costAsInt reproduces the upstream total semantics: a plain integer parse
// of the leading digits of the cost string. Costs are integral pounds in
// practice; fractional parts are truncated, not rounded.
func costAsInt(cost string) int {
	total := 0
	seen := false
	for _, r := range cost {
		if r < '0' || r > '9' {
			break
		}
		total = total*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return total
}
