package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/flight-price-tracker/internal/api/client"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage flight price alerts: a route, travel dates, a price threshold\n" +
			"and the email address or phone number to notify on a drop.",
	}

	alertsRoot.AddCommand(
		alertsListCmd(),
		alertsGetCmd(),
		alertsCreateCmd(),
		alertsDeactivateCmd(),
		alertsVerifyPhoneCmd(),
	)

	return alertsRoot
}

func alertsListCmd() *cobra.Command {
	var f apiclient.AlertFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Example: `  fpt alerts list
  fpt alerts list --active true --origin LAX
  fpt alerts list --email someone@example.com --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			list, err := c.ListAlerts(context.Background(), &f)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(list)
			}
			if len(list.Alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			if err := printAlertTable(os.Stdout, list.Alerts); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d alerts\n", len(list.Alerts), list.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Active, "active", "", "filter by active state (true, false)")
	cmd.Flags().StringVar(&f.Verified, "verified", "", "filter by any verified contact (true, false)")
	cmd.Flags().StringVar(&f.Origin, "origin", "", "filter by origin IATA code")
	cmd.Flags().StringVar(&f.Destination, "destination", "", "filter by destination IATA code")
	cmd.Flags().StringVar(&f.Email, "email", "", "filter by subscriber email")
	cmd.Flags().IntVar(&f.Limit, "limit", 50, "max results")
	cmd.Flags().IntVar(&f.Offset, "offset", 0, "results offset")
	cmd.Flags().StringVar(&f.OrderBy, "order-by", "", "sort field (departure_date, created_at, price_threshold)")

	return cmd
}

func alertsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show alert details",
		Example: `  fpt alerts get 0b6c2f9e-...
  fpt alerts get 0b6c2f9e-... --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAlert(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAlertDetail(os.Stdout, a)
		},
	}
}

func alertsCreateCmd() *cobra.Command {
	var req apiclient.CreateAlertRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new alert",
		Long: "Create a new price alert. At least one of --email or --phone is\n" +
			"required. The alert is only checked once a contact is verified: an\n" +
			"email link or an SMS code is sent on creation.",
		Example: `  # One-way alert notified by email
  fpt alerts create --origin LAX --destination JFK \
    --depart 2030-06-01 --price 350 --email someone@example.com

  # Round trip with SMS
  fpt alerts create --origin SFO --destination NRT --trip round-trip \
    --depart 2030-09-10 --return 2030-09-24 --price 900 --phone +15551234567`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if req.Origin == "" || req.Destination == "" || req.DepartureDate == "" {
				return fmt.Errorf("--origin, --destination and --depart are required")
			}
			if req.PriceThreshold == "" {
				return fmt.Errorf("--price is required")
			}
			if req.Email == "" && req.Phone == "" {
				return fmt.Errorf("one of --email or --phone is required")
			}
			if req.ReturnDate != "" && req.TripType == "one-way" {
				req.TripType = "round-trip"
			}

			c := newClient()
			created, err := c.CreateAlert(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Alert created: %s (%s → %s)\n",
				created.Alert.ID, created.Alert.Origin, created.Alert.Destination)
			if created.VerificationEmailSent {
				fmt.Println("Verification email sent.")
			}
			if created.VerificationSMSSent {
				fmt.Println("Verification code sent by SMS; confirm with `fpt alerts verify-phone`.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Origin, "origin", "", "origin IATA code")
	cmd.Flags().StringVar(&req.Destination, "destination", "", "destination IATA code")
	cmd.Flags().StringVar(&req.DepartureDate, "depart", "", "departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.ReturnDate, "return", "", "return date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.TripType, "trip", "one-way", "trip type (one-way, round-trip)")
	cmd.Flags().StringVar(&req.PriceThreshold, "price", "", "notify when an offer is below this price")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address to notify")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "E.164 phone number to notify")

	return cmd
}

func alertsDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deactivate <id>",
		Short:   "Stop checking an alert",
		Example: `  fpt alerts deactivate 0b6c2f9e-...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeactivateAlert(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Alert %s deactivated.\n", args[0])
			return nil
		},
	}
}

func alertsVerifyPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verify-phone <id> <code>",
		Short:   "Confirm an alert's phone number with the SMS code",
		Example: `  fpt alerts verify-phone 0b6c2f9e-... 123456`,
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.VerifyPhone(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			fmt.Printf("Phone verified for alert %s.\n", a.ID)
			return nil
		},
	}
}
