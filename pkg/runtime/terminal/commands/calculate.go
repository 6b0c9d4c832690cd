package commands

import (
	"fmt"

	"github.com/de-tools/order-calc/pkg/runtime/terminal/export"
	"github.com/de-tools/order-calc/pkg/services/pricing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type CalculateCmd struct {
	quantity      int
	unitPrice     float64
	taxPercentage float64
	profile       string
	output        string
	env           *Env
}

func NewCalculateCmd(env *Env) *cobra.Command {
	cc := &CalculateCmd{env: env}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Price an order from flags",
		Example: "  order-calc calculate --quantity 5 --unit-price 10 --tax 20\n" +
			"  order-calc calculate --quantity 2 --unit-price 30 --profile uk --output json",
		RunE: cc.run,
	}

	cmd.Flags().IntVar(&cc.quantity, "quantity", 0, "Number of items")
	cmd.Flags().Float64Var(&cc.unitPrice, "unit-price", 0, "Price per item")
	cmd.Flags().Float64Var(&cc.taxPercentage, "tax", 0, "Tax rate in percent")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Named tax profile to take the rate from")
	cmd.Flags().StringVarP(&cc.output, "output", "o", export.FormatText, "Output format (text or json)")

	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("unit-price")
	cmd.MarkFlagsOneRequired("tax", "profile")
	cmd.MarkFlagsMutuallyExclusive("tax", "profile")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	handler, err := export.NewHandler(cc.output, cmd.OutOrStdout(), cc.env.Settings.CurrencySymbol)
	if err != nil {
		return err
	}

	taxPercentage := cc.taxPercentage
	if cc.profile != "" {
		profiles, err := cc.env.ProfileRegistry()
		if err != nil {
			return err
		}
		profile, err := profiles.GetProfile(ctx, cc.profile)
		if err != nil {
			return fmt.Errorf("failed to resolve tax rate: %w", err)
		}
		taxPercentage = profile.TaxPercentage
	}

	summary := pricing.Calculate(cc.quantity, cc.unitPrice, taxPercentage)
	logger.Debug().
		Int("quantity", summary.Quantity).
		Float64("unit_price", summary.UnitPrice).
		Float64("tax_percentage", summary.TaxPercentage).
		Float64("final_price", summary.FinalPrice).
		Str("profile", cc.profile).
		Msg("order priced")

	return handler.Handle(summary)
}
