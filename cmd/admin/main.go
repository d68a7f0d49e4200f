package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oasis00-1/oasis-springs-app/internal/application/report"
	"github.com/oasis00-1/oasis-springs-app/internal/config"
	domain "github.com/oasis00-1/oasis-springs-app/internal/domain/order"
	"github.com/oasis00-1/oasis-springs-app/internal/infrastructure/persistence/csvstore"
)

const dateLayout = "2006-01-02"

var ksh = message.NewPrinter(language.English)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Oasis Springs admin dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newOrdersCmd())
	return root
}

func newOrdersCmd() *cobra.Command {
	var (
		nameFilter     string
		locationFilter string
		fromStr        string
		toStr          string
		exportPath     string
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Filter recorded orders and print or export them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			f := report.Filter{Name: nameFilter, Location: locationFilter}
			if fromStr != "" {
				t, err := time.Parse(dateLayout, fromStr)
				if err != nil {
					return fmt.Errorf("invalid --from date %q, want YYYY-MM-DD", fromStr)
				}
				f.From = t
			}
			if toStr != "" {
				t, err := time.Parse(dateLayout, toStr)
				if err != nil {
					return fmt.Errorf("invalid --to date %q, want YYYY-MM-DD", toStr)
				}
				f.To = t.Add(24*time.Hour - time.Second)
			}

			svc := report.NewService(csvstore.New(cfg.Store))

			recs, sum, err := svc.Query(cmd.Context(), f)
			if errors.Is(err, domain.ErrNoOrders) {
				fmt.Fprintf(cmd.OutOrStdout(),
					"No order data found (%s missing). Make sure orders have been saved.\n",
					cfg.Store.Path)
				return nil
			}
			if err != nil {
				return fmt.Errorf("load orders: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Orders: %d\n", sum.Orders)
			fmt.Fprintf(out, "Total Sales (Ksh): %s\n", ksh.Sprintf("%d", sum.TotalSales))
			fmt.Fprintf(out, "Unique Customers: %d\n\n", sum.UniqueCustomers)

			printOrders(out, recs)

			if exportPath != "" {
				if err := exportOrders(svc, cmd, f, exportPath); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nExported %d orders to %s\n", len(recs), exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "filter by customer name substring")
	cmd.Flags().StringVar(&locationFilter, "location", report.LocationAll, "filter by delivery location")
	cmd.Flags().StringVar(&fromStr, "from", "", "start of date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "end of date range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the filtered orders to a CSV file")
	return cmd
}

func printOrders(out io.Writer, recs []domain.Record) {
	table := tablewriter.NewWriter(out)
	table.Header("Date", "Name", "Phone", "Location", "Order", "Fee", "Total")
	for _, rec := range recs {
		date := ""
		if !rec.Date.IsZero() {
			date = rec.Date.Format(csvstore.TimeLayout)
		}
		table.Append([]string{
			date,
			rec.Name,
			rec.Phone,
			rec.Location,
			rec.Summary,
			ksh.Sprintf("%d", rec.DeliveryFee),
			ksh.Sprintf("%d", rec.Total),
		})
	}
	table.Render()
}

func exportOrders(svc *report.Service, cmd *cobra.Command, f report.Filter, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := svc.Export(cmd.Context(), f, out); err != nil {
		out.Close()
		return fmt.Errorf("export orders: %w", err)
	}
	return out.Close()
}
