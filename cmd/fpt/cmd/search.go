package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/flight-price-tracker/internal/api/client"
)

func searchCmd() *cobra.Command {
	var p apiclient.SearchParams

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search live flight offers",
		Long: "Queries the price provider through the server without creating an\n" +
			"alert. Each search counts against the provider's daily quota.",
		Example: `  fpt search --origin LAX --destination JFK --depart 2030-06-01
  fpt search --origin LAX --destination JFK --depart 2030-06-01 --return 2030-06-10 --limit 3`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if p.Origin == "" || p.Destination == "" || p.DepartureDate == "" {
				return fmt.Errorf("--origin, --destination and --depart are required")
			}
			c := newClient()
			offers, err := c.Search(context.Background(), &p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(offers)
			}
			if len(offers) == 0 {
				fmt.Println("No offers found.")
				return nil
			}
			return printOffersTable(os.Stdout, offers)
		},
	}
	cmd.Flags().StringVar(&p.Origin, "origin", "", "origin IATA code")
	cmd.Flags().StringVar(&p.Destination, "destination", "", "destination IATA code")
	cmd.Flags().StringVar(&p.DepartureDate, "depart", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&p.ReturnDate, "return", "", "return date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&p.Limit, "limit", 10, "max offers")

	return cmd
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the provider's daily search quota",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.Quota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(os.Stdout, q)
		},
	}
}
