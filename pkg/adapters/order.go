package adapters

import (
	"github.com/de-tools/order-calc/pkg/models/api"
	"github.com/de-tools/order-calc/pkg/models/domain"
)

func MapDomainSummaryToApiSummary(summary domain.OrderSummary) api.OrderSummary {
	return api.OrderSummary{
		Quantity:      summary.Quantity,
		UnitPrice:     summary.UnitPrice,
		Subtotal:      summary.Subtotal,
		TaxPercentage: summary.TaxPercentage,
		TaxAmount:     summary.TaxAmount,
		FinalPrice:    summary.FinalPrice,
	}
}

func MapDomainProfilesToApiProfiles(profiles []domain.TaxProfile) []api.TaxProfile {
	result := make([]api.TaxProfile, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, api.TaxProfile{
			Name:          p.Name,
			TaxPercentage: p.TaxPercentage,
			Description:   p.Description,
		})
	}
	return result
}
