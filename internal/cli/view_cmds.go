package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"github.com/rogerio-castellano/commerce-dashboard/internal/view"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// criteriaFlags mirror the dashboard filter panel for the one-shot commands.
type criteriaFlags struct {
	search       string
	categories   []string
	minPrice     float64
	maxPrice     float64
	minStock     int
	maxStock     int
	lowStockOnly bool
	sortBy       string
	sortOrder    string
	preset       string
}

func (f *criteriaFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.search, "search", "", "case-insensitive name search")
	fs.StringSliceVar(&f.categories, "category", nil, "categories to keep, repeatable")
	fs.Float64Var(&f.minPrice, "min-price", 0, "lowest price kept")
	fs.Float64Var(&f.maxPrice, "max-price", 0, "highest price kept")
	fs.IntVar(&f.minStock, "min-stock", 0, "lowest stock kept")
	fs.IntVar(&f.maxStock, "max-stock", 0, "highest stock kept")
	fs.BoolVar(&f.lowStockOnly, "low-stock-only", false, "keep only low stock products")
	fs.StringVar(&f.sortBy, "sort-by", string(view.SortByName), "name|category|price|unitsSold|inStock|date")
	fs.StringVar(&f.sortOrder, "sort-order", string(view.Ascending), "asc|desc")
	fs.StringVar(&f.preset, "preset", "", "stock preset: critical|low|good|all")
}

// apply narrows d to the flags the user set. Unset bounds keep the observed range.
func (f *criteriaFlags) apply(d *store.Dashboard, fs *pflag.FlagSet) error {
	if f.preset != "" {
		if _, err := d.ApplyStockPreset(view.StockPreset(f.preset)); err != nil {
			return err
		}
	}

	c := d.Criteria()
	patch := view.CriteriaPatch{
		SortBy:    (*view.SortField)(&f.sortBy),
		SortOrder: (*view.SortOrder)(&f.sortOrder),
	}
	if fs.Changed("search") {
		patch.Search = &f.search
	}
	if fs.Changed("category") {
		patch.Categories = &f.categories
	}
	if fs.Changed("min-price") || fs.Changed("max-price") {
		price := c.Price
		if fs.Changed("min-price") {
			price.Min = f.minPrice
		}
		if fs.Changed("max-price") {
			price.Max = f.maxPrice
		}
		patch.Price = &price
	}
	if fs.Changed("min-stock") || fs.Changed("max-stock") {
		stock := c.InStock
		if fs.Changed("min-stock") {
			stock.Min = f.minStock
		}
		if fs.Changed("max-stock") {
			stock.Max = f.maxStock
		}
		patch.InStock = &stock
	}
	if fs.Changed("low-stock-only") {
		patch.LowStockOnly = &f.lowStockOnly
	}

	_, err := d.UpdateCriteria(patch)
	return err
}

type summaryOutput struct {
	view.Summary
	Top []view.ProductPoint `json:"topProducts"`
}

func newSummaryCmd(a *app) *cobra.Command {
	var flags criteriaFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the aggregates of the filtered products as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDashboard(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()
			if err := flags.apply(d, cmd.Flags()); err != nil {
				return err
			}

			v := d.View()
			out := summaryOutput{Summary: v.Summary, Top: view.Points(v.Top)}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var flags criteriaFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered and sorted products as CSV to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.loadDashboard(cmd.Context())
			if err != nil {
				return err
			}
			defer d.Close()
			if err := flags.apply(d, cmd.Flags()); err != nil {
				return err
			}

			if err := view.WriteCSV(cmd.OutOrStdout(), d.View().Products); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
