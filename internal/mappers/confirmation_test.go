package mappers

import (
	"strings"
	"testing"

	"github.com/companieshouse/orders-web/internal/config"
	"github.com/companieshouse/orders-web/internal/orders"
)

var testCfg = Config{
	DispatchDays: "4",
	Flags: config.FeatureFlags{
		LPCertificateOrders:  true,
		LLPCertificateOrders: true,
		Liquidation:          true,
		Administration:       true,
	},
}

func testDelivery() *orders.DeliveryDetails {
	return &orders.DeliveryDetails{
		Forename:     "Jane",
		Surname:      "Smith",
		AddressLine1: "10 Main Street",
		Locality:     "Cardiff",
		PostalCode:   "CF14 3UZ",
		Country:      "Wales",
	}
}

func TestMapItemIncorporationCertificateUsesFactory(t *testing.T) {
	item := certificateItem(&orders.CertificateItemOptions{
		CertificateType:   orders.CertificateTypeIncorporation,
		CompanyType:       orders.CompanyTypeLLP,
		CompanyStatus:     orders.CompanyStatusActive,
		DeliveryTimescale: orders.DeliveryTimescaleStandard,
	})
	page, err := MapItem(item, testDelivery(), testCfg)
	if err != nil {
		t.Fatalf("MapItem: %v", err)
	}
	if page.ServiceURL != "/company/00006400/orderable/certificates" {
		t.Errorf("service url = %q", page.ServiceURL)
	}
	if page.ServiceName != "Order a certificate" || page.TitleText != "Certificate ordered" {
		t.Errorf("service metadata = %q / %q", page.ServiceName, page.TitleText)
	}
	// LLP detail rows followed by delivery, address and fee metadata
	assertRowKeys(t, page.OrderDetailsTable, []string{
		"Company name",
		"Company number",
		"Certificate type",
		"Statement of good standing",
		"Registered office address",
		"The names of all current designated members",
		"The names of all current members",
		"Delivery method",
		"Delivery address",
		"Fee",
	})
	found := false
	for _, row := range page.OrderDetailsTable {
		if row.Key.Text == "Delivery method" {
			found = true
			if !strings.Contains(row.Value.HTML, "Standard delivery (aim to dispatch within 4 working days)") {
				t.Errorf("delivery method = %q", row.Value.HTML)
			}
		}
		if row.Key.Text == "Fee" && !strings.Contains(row.Value.HTML, "£15") {
			t.Errorf("fee = %q", row.Value.HTML)
		}
	}
	if !found {
		t.Error("delivery method row missing")
	}
	if page.WhatHappensNextText != "We aim to send out standard orders within 4 working days." {
		t.Errorf("what happens next = %q", page.WhatHappensNextText)
	}
}

func TestMapItemDissolutionCertificateSkipsFactory(t *testing.T) {
	item := certificateItem(&orders.CertificateItemOptions{
		CertificateType:   orders.CertificateTypeDissolution,
		CompanyType:       "ltd",
		DeliveryTimescale: orders.DeliveryTimescaleSameDay,
		IncludeEmailCopy:  boolPtr(false),
	})
	page, err := MapItem(item, testDelivery(), testCfg)
	if err != nil {
		t.Fatalf("MapItem: %v", err)
	}
	assertRowKeys(t, page.OrderDetailsTable, []string{
		"Company name",
		"Company number",
		"Certificate type",
		"Delivery method",
		"Email copy required",
		"Delivery address",
	})
	for _, row := range page.OrderDetailsTable {
		switch row.Key.Text {
		case "Certificate type":
			if !strings.Contains(row.Value.HTML, "Dissolution with all company name changes") {
				t.Errorf("certificate type = %q", row.Value.HTML)
			}
		case "Delivery method":
			if !strings.Contains(row.Value.HTML, "Same Day") {
				t.Errorf("delivery method = %q", row.Value.HTML)
			}
		case "Email copy required":
			// explicit false reads Yes: the option is present
			if !strings.Contains(row.Value.HTML, "Yes") {
				t.Errorf("email copy = %q", row.Value.HTML)
			}
		}
	}
	if page.WhatHappensNextText != "Orders received before 11am will be sent out the same working day. Orders received after 11am will be sent out the next working day." {
		t.Errorf("same-day what happens next = %q", page.WhatHappensNextText)
	}
}

func TestMapItemCertifiedCopy(t *testing.T) {
	item := orders.Item{
		ID:            "CCD-768116-517930",
		Kind:          orders.KindCertifiedCopy,
		CompanyName:   "ACME EXAMPLE LIMITED",
		CompanyNumber: "00006400",
		TotalItemCost: "30",
		CertifiedCopyOptions: &orders.CertifiedCopyItemOptions{
			DeliveryTimescale: orders.DeliveryTimescaleStandard,
			FilingHistoryDocuments: []orders.FilingHistoryDocument{
				{
					Date:        "2010-02-12",
					Type:        "CH01",
					Description: "change-person-director-company-with-change-date",
					DescriptionValues: map[string]any{
						"change_date":  "2010-02-12",
						"officer_name": "Thomas David Wheare",
					},
					Cost: "15",
				},
			},
		},
	}
	page, err := MapItem(item, testDelivery(), testCfg)
	if err != nil {
		t.Fatalf("MapItem: %v", err)
	}
	if page.ServiceURL != "/company/00006400/orderable/certified-copies" {
		t.Errorf("service url = %q", page.ServiceURL)
	}
	assertRowKeys(t, page.OrderDetailsTable, []string{
		"Company name",
		"Company number",
		"Delivery method",
		"Delivery address",
	})
	if len(page.DocumentDetails) != 1 {
		t.Fatalf("document details = %d rows, want 1", len(page.DocumentDetails))
	}
	doc := page.DocumentDetails[0]
	if doc.Date != "12 Feb 2010" {
		t.Errorf("document date = %q", doc.Date)
	}
	if doc.Type != "CH01" {
		t.Errorf("document type = %q", doc.Type)
	}
	if doc.Description != "Director's details changed for Thomas David Wheare on 12 February 2010" {
		t.Errorf("document description = %q", doc.Description)
	}
	if doc.Fee != "£15" {
		t.Errorf("document fee = %q", doc.Fee)
	}
	if !strings.Contains(page.WhatHappensNextText, "certified document orders within 4 working days") {
		t.Errorf("what happens next = %q", page.WhatHappensNextText)
	}
}

func TestMapItemMissingImageDelivery(t *testing.T) {
	item := orders.Item{
		ID:            "MID-504916-663659",
		Kind:          orders.KindMissingImageDelivery,
		CompanyName:   "ACME EXAMPLE LIMITED",
		CompanyNumber: "00006400",
		TotalItemCost: "3",
		MissingImageDeliveryOptions: &orders.MissingImageDeliveryItemOptions{
			FilingHistoryDate:        "2015-05-26",
			FilingHistoryType:        "AP01",
			FilingHistoryDescription: "appoint-person-director-company-with-name",
			FilingHistoryValues: map[string]any{
				"officer_name": "Mr Richard John Harris",
			},
		},
	}
	page, err := MapItem(item, nil, testCfg)
	if err != nil {
		t.Fatalf("MapItem: %v", err)
	}
	if page.ServiceURL != "/company/00006400/orderable/missing-image-deliveries" {
		t.Errorf("service url = %q", page.ServiceURL)
	}
	if page.TitleText != "Document Requested" || page.PageTitle != "Document Requested" {
		t.Errorf("titles = %q / %q", page.TitleText, page.PageTitle)
	}
	assertRowKeys(t, page.OrderDetailsTable, []string{
		"Company name",
		"Company number",
		"Date",
		"Type",
		"Description",
	})
	for _, row := range page.OrderDetailsTable {
		switch row.Key.Text {
		case "Date":
			if !strings.Contains(row.Value.HTML, "26 May 2015") {
				t.Errorf("date = %q", row.Value.HTML)
			}
		case "Description":
			if !strings.Contains(row.Value.HTML, "Appointment of Mr Richard John Harris as a director") {
				t.Errorf("description = %q", row.Value.HTML)
			}
		}
	}
	if !strings.Contains(page.WhatHappensNextHTML, "<p>It can take us several hours to check the availability of a document.") {
		t.Errorf("what happens next html = %q", page.WhatHappensNextHTML)
	}
	if !strings.Contains(page.WhatHappensNextHTML, "issue a refund") {
		t.Errorf("what happens next html missing refund paragraph: %q", page.WhatHappensNextHTML)
	}
	if strings.Count(page.WhatHappensNextHTML, "<p>") != 3 {
		t.Errorf("expected 3 paragraphs, got %q", page.WhatHappensNextHTML)
	}
}

func TestMapItemUnknownKind(t *testing.T) {
	item := orders.Item{Kind: "item#unknown"}
	_, err := MapItem(item, nil, testCfg)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if err.Error() != "Unknown item type: [item#unknown]" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestMapItemAllKindsShareShape(t *testing.T) {
	items := []orders.Item{
		certificateItem(&orders.CertificateItemOptions{CertificateType: orders.CertificateTypeIncorporation}),
		{Kind: orders.KindCertifiedCopy, CompanyNumber: "123", CertifiedCopyOptions: &orders.CertifiedCopyItemOptions{}},
		{Kind: orders.KindMissingImageDelivery, CompanyNumber: "123"},
	}
	for _, item := range items {
		page, err := MapItem(item, testDelivery(), testCfg)
		if err != nil {
			t.Fatalf("MapItem(%s): %v", item.Kind, err)
		}
		if page.ServiceURL == "" || page.ServiceName == "" || page.TitleText == "" || page.PageTitle == "" {
			t.Errorf("%s: incomplete page metadata: %+v", item.Kind, page)
		}
		if len(page.OrderDetailsTable) == 0 {
			t.Errorf("%s: empty order details table", item.Kind)
		}
	}
}
