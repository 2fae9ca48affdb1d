package orders

import "time"

func boolPtr(v bool) *bool { return &v }

// fakeBasket backs local development and handler tests when no API base URL
// is configured.
func fakeBasket() Basket {
	return Basket{
		Items: []Item{
			fakeCertificateItem(),
			fakeCertifiedCopyItem(),
			fakeMissingImageDeliveryItem(),
		},
		DeliveryDetails: fakeDeliveryDetails(),
		TotalBasketCost: "48",
	}
}

func fakeCheckout(reference string) Checkout {
	return Checkout{
		Reference:        reference,
		PaidAt:           time.Date(2019, time.December, 16, 9, 16, 17, 0, time.UTC),
		PaymentReference: "q4nn5UxZiZxVG2e",
		TotalOrderCost:   "48",
		DeliveryDetails:  fakeDeliveryDetails(),
		Items: []Item{
			fakeCertificateItem(),
			fakeCertifiedCopyItem(),
			fakeMissingImageDeliveryItem(),
		},
	}
}

func fakeOrder(reference string) Order {
	co := fakeCheckout(reference)
	return Order{
		Reference:        co.Reference,
		OrderedAt:        co.PaidAt,
		PaymentReference: co.PaymentReference,
		TotalOrderCost:   co.TotalOrderCost,
		DeliveryDetails:  co.DeliveryDetails,
		Items:            co.Items,
	}
}

func fakeDeliveryDetails() *DeliveryDetails {
	return &DeliveryDetails{
		Forename:     "Jane",
		Surname:      "Smith",
		AddressLine1: "10 Main Street",
		AddressLine2: "Kings Heath",
		Locality:     "Cardiff",
		Region:       "Glamorgan",
		PostalCode:   "CF14 3UZ",
		Country:      "Wales",
	}
}

func fakeCertificateItem() Item {
	return Item{
		ID:            "CRT-102416-028334",
		Kind:          KindCertificate,
		CompanyName:   "ACME EXAMPLE LIMITED",
		CompanyNumber: "00006400",
		Quantity:      1,
		TotalItemCost: "15",
		ItemURI:       "/orderable/certificates/CRT-102416-028334",
		CertificateOptions: &CertificateItemOptions{
			CertificateType:                CertificateTypeIncorporation,
			CompanyType:                    "ltd",
			CompanyStatus:                  CompanyStatusActive,
			DeliveryTimescale:              DeliveryTimescaleStandard,
			IncludeGoodStandingInformation: boolPtr(true),
			RegisteredOfficeAddressDetails: &AddressDetails{
				IncludeAddressRecordsType: "current",
			},
			DirectorDetails: &OfficerDetails{
				IncludeBasicInformation: boolPtr(true),
			},
			SecretaryDetails: &OfficerDetails{
				IncludeBasicInformation: boolPtr(true),
			},
		},
	}
}

func fakeCertifiedCopyItem() Item {
	return Item{
		ID:            "CCD-768116-517930",
		Kind:          KindCertifiedCopy,
		CompanyName:   "ACME EXAMPLE LIMITED",
		CompanyNumber: "00006400",
		Quantity:      1,
		TotalItemCost: "30",
		ItemURI:       "/orderable/certified-copies/CCD-768116-517930",
		CertifiedCopyOptions: &CertifiedCopyItemOptions{
			DeliveryTimescale: DeliveryTimescaleStandard,
			FilingHistoryDocuments: []FilingHistoryDocument{
				{
					Date:        "2010-02-12",
					Type:        "CH01",
					Description: "change-person-director-company-with-change-date",
					DescriptionValues: map[string]any{
						"change_date":  "2010-02-12",
						"officer_name": "Thomas David Wheare",
					},
					Cost: "15",
					ID:   "MDAxMTEyNzExOGFkaXF6a2N4",
				},
				{
					Date:        "2009-09-10",
					Type:        "AA",
					Description: "accounts-with-accounts-type-group",
					DescriptionValues: map[string]any{
						"made_up_date": "2008-08-31",
					},
					Cost: "15",
					ID:   "MzAwOTM2MDg5OWFkaXF6a2N4",
				},
			},
		},
	}
}

func fakeMissingImageDeliveryItem() Item {
	return Item{
		ID:            "MID-504916-663659",
		Kind:          KindMissingImageDelivery,
		CompanyName:   "ACME EXAMPLE LIMITED",
		CompanyNumber: "00006400",
		Quantity:      1,
		TotalItemCost: "3",
		ItemURI:       "/orderable/missing-image-deliveries/MID-504916-663659",
		MissingImageDeliveryOptions: &MissingImageDeliveryItemOptions{
			FilingHistoryDate:        "2015-05-26",
			FilingHistoryType:        "AP01",
			FilingHistoryDescription: "appoint-person-director-company-with-name",
			FilingHistoryValues: map[string]any{
				"officer_name": "Mr Richard John Harris",
			},
			FilingHistoryID: "OTAwMzQ3NTzhdGl0eXhth",
		},
	}
}
