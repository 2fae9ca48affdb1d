package mappers

import (
	"errors"

	"github.com/companieshouse/orders-web/internal/filinghistory"
	"github.com/companieshouse/orders-web/internal/govuk"
	"github.com/companieshouse/orders-web/internal/orders"
)

// ErrMapperNotFound is returned when no summary mapper exists for an item
// kind. It is fatal for the request; the handler surfaces a 500.
var ErrMapperNotFound = errors.New("Mapper not found")

// ItemSummary is the view model for a single item's summary page.
type ItemSummary struct {
	ItemID          string
	Heading         string
	DetailTable     []govuk.Row
	DocumentDetails []DocumentRow
}

// summaryMapper maps one item kind onto its summary page.
type summaryMapper interface {
	mapSummary(item orders.Item, cfg Config) (ItemSummary, error)
}

// nullSummaryMapper is the sentinel resolved for unrecognised kinds; every
// operation on it fails.
type nullSummaryMapper struct{}

func (nullSummaryMapper) mapSummary(orders.Item, Config) (ItemSummary, error) {
	return ItemSummary{}, ErrMapperNotFound
}

var summaryMappers = map[string]summaryMapper{
	orders.KindCertificate:          certificateSummaryMapper{},
	orders.KindCertifiedCopy:        certifiedCopySummaryMapper{},
	orders.KindMissingImageDelivery: missingImageSummaryMapper{},
}

func summaryMapperFor(kind string) summaryMapper {
	if m, ok := summaryMappers[kind]; ok {
		return m
	}
	return nullSummaryMapper{}
}

// MapItemSummary builds the summary page for one order item.
func MapItemSummary(item orders.Item, cfg Config) (ItemSummary, error) {
	return summaryMapperFor(item.Kind).mapSummary(item, cfg)
}

type certificateSummaryMapper struct{}

func (certificateSummaryMapper) mapSummary(item orders.Item, cfg Config) (ItemSummary, error) {
	rows := certificateCommonRows(item)
	opts := item.CertificateOptions
	// Dissolution certificates carry no officer or address options, so the
	// table deliberately ends at the certificate-type row.
	if opts == nil || opts.CertificateType == orders.CertificateTypeDissolution {
		return ItemSummary{ItemID: item.ID, Heading: "Certificate", DetailTable: rows}, nil
	}
	mapper := NewFactory(cfg.Flags).MapperFor(opts.CompanyType, opts.CompanyStatus)
	rows = append(rows, mapper.OptionRows(opts)...)
	return ItemSummary{ItemID: item.ID, Heading: "Certificate", DetailTable: rows}, nil
}

type certifiedCopySummaryMapper struct{}

func (certifiedCopySummaryMapper) mapSummary(item orders.Item, cfg Config) (ItemSummary, error) {
	rows := []govuk.Row{
		textRow(keyCompanyName, "companyNameValue", item.CompanyName),
		textRow(keyCompanyNumber, "companyNumberValue", item.CompanyNumber),
	}
	var docs []orders.FilingHistoryDocument
	if item.CertifiedCopyOptions != nil {
		docs = item.CertifiedCopyOptions.FilingHistoryDocuments
	}
	return ItemSummary{
		ItemID:          item.ID,
		Heading:         "Certified document",
		DetailTable:     rows,
		DocumentDetails: documentRows(docs),
	}, nil
}

type missingImageSummaryMapper struct{}

func (missingImageSummaryMapper) mapSummary(item orders.Item, cfg Config) (ItemSummary, error) {
	opts := item.MissingImageDeliveryOptions
	if opts == nil {
		opts = &orders.MissingImageDeliveryItemOptions{}
	}
	rows := []govuk.Row{
		textRow(keyCompanyName, "companyNameValue", item.CompanyName),
		textRow(keyCompanyNumber, "companyNumberValue", item.CompanyNumber),
		textRow(keyDate, "filingHistoryDateValue", filingHistoryDateText(opts.FilingHistoryDate)),
		textRow(keyType, "filingHistoryTypeValue", opts.FilingHistoryType),
		textRow(keyDescription, "filingHistoryDescriptionValue",
			filinghistory.Describe(opts.FilingHistoryDescription, opts.FilingHistoryValues)),
		feeRow(item.TotalItemCost),
	}
	return ItemSummary{ItemID: item.ID, Heading: "Missing image request", DetailTable: rows}, nil
}
