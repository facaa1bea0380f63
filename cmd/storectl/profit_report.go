package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

var profitReportTmpl = template.Must(template.New("profit").Parse(
	`Profit report ({{.Window}}) generated {{.CalculatedAt.Format "2006-01-02 15:04"}}
{{range .Lines}}{{printf "%-32.32s" .Name}} sold {{printf "%5d" .QuantitySold}}  revenue {{printf "%12.2f" .Revenue}}  profit {{printf "%12.2f" .Profit}}  margin {{printf "%6.2f" .Margin}}%
{{end}}--
Total revenue {{printf "%.2f" .TotalRevenue}}  profit {{printf "%.2f" .TotalProfit}}  margin {{printf "%.2f" .Margin}}%
`))

type profitReportCmd struct {
	out       io.Writer
	window    string
	productID string
	cost      string
}

// newProfitReportCmd runs the profit calculator against the live database
// and prints the result.
func newProfitReportCmd(out io.Writer) *cobra.Command {
	pr := &profitReportCmd{out: out}
	cmd := &cobra.Command{
		Use:   "profit-report",
		Short: "Print the profit calculation for a time window",
		RunE:  pr.run,
	}
	cmd.Flags().StringVar(&pr.window, "window", "all", "Time window: all, today, week or month")
	cmd.Flags().StringVar(&pr.productID, "product", "", "Limit to one product id")
	cmd.Flags().StringVar(&pr.cost, "cost", "", "Cost price override (requires --product)")
	return cmd
}

func (pr *profitReportCmd) run(cmd *cobra.Command, args []string) error {
	if pr.cost != "" && pr.productID == "" {
		return fmt.Errorf("--cost requires --product")
	}
	if err := connectDB(); err != nil {
		return err
	}
	defer config.CloseDB()

	ctx, cancel := config.WithCustomTimeout(time.Minute)
	defer cancel()

	snap, err := services.NewPgxSnapshotLoader(config.Pool).LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	in := analytics.ProfitInput{Mode: analytics.ProfitModeAll, Window: analytics.ParseWindow(pr.window)}
	if pr.productID != "" {
		in.Mode = analytics.ProfitModeSingle
		in.ProductID = pr.productID
		in.CostOverride = pr.cost
	}

	result, err := analytics.CalculateProfit(snap, in, time.Now())
	if err != nil {
		return err
	}
	return profitReportTmpl.Execute(pr.out, result)
}
