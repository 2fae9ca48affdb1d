package mappers

import (
	"github.com/companieshouse/orders-web/internal/config"
	"github.com/companieshouse/orders-web/internal/orders"
)

type typeStatusKey struct {
	companyType   string
	companyStatus string
}

// Factory selects the certificate detail mapper for a company type/status
// combination. The selection tables are built once from the feature flags;
// a disabled flag simply leaves its specialised entries out, so lookups for
// those combinations fall through to the default mapper rather than fail.
type Factory struct {
	overrides map[typeStatusKey]CertificateMapper
	byType    map[string]CertificateMapper
	byStatus  map[string]CertificateMapper
	fallback  CertificateMapper
}

// NewFactory builds the selection tables for the supplied flags.
func NewFactory(flags config.FeatureFlags) *Factory {
	f := &Factory{
		overrides: map[typeStatusKey]CertificateMapper{},
		byType:    map[string]CertificateMapper{},
		byStatus:  map[string]CertificateMapper{},
		fallback:  CertificateMapper{variant: variantOther},
	}
	if flags.LLPCertificateOrders {
		f.byType[orders.CompanyTypeLLP] = CertificateMapper{variant: variantLLP}
		if flags.Liquidation {
			f.overrides[typeStatusKey{orders.CompanyTypeLLP, orders.CompanyStatusLiquidation}] =
				CertificateMapper{variant: variantLiquidatedLLP}
		}
		if flags.Administration {
			f.overrides[typeStatusKey{orders.CompanyTypeLLP, orders.CompanyStatusAdministration}] =
				CertificateMapper{variant: variantAdministratedLLP}
		}
	}
	if flags.LPCertificateOrders {
		f.byType[orders.CompanyTypeLP] = CertificateMapper{variant: variantLP}
	}
	if flags.Liquidation {
		f.byStatus[orders.CompanyStatusLiquidation] = CertificateMapper{variant: variantLiquidatedOther}
	}
	if flags.Administration {
		f.byStatus[orders.CompanyStatusAdministration] = CertificateMapper{variant: variantAdministratedOther}
	}
	return f
}

// MapperFor resolves a mapper. Lookup order: exact type/status override,
// then company type, then company status, then the default mapper. It
// always resolves; unknown combinations map like an active limited company.
func (f *Factory) MapperFor(companyType, companyStatus string) CertificateMapper {
	if m, ok := f.overrides[typeStatusKey{companyType, companyStatus}]; ok {
		return m
	}
	if m, ok := f.byType[companyType]; ok {
		return m
	}
	if m, ok := f.byStatus[companyStatus]; ok {
		return m
	}
	return f.fallback
}
