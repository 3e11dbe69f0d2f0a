package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/models"
	"clinic-booking-service/internal/pkg/dto/responses"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func feesCmd(internalConfig *config.InternalConfig, opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Get, set and delete doctor fee structures",
	}

	getCmd := &cobra.Command{
		Use:   "get <doctor-id>",
		Short: "Show a doctor's fee structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			lookup, err := a.fees.Get(a.ctx, a.org, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), responses.FeeLookup{Fee: lookup.Fee, Found: lookup.Found})
		},
	}
	cmd.AddCommand(getCmd)

	setCmd := &cobra.Command{
		Use:   "set <doctor-id>",
		Short: "Create or update a doctor's fee structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			// Amounts without a flag keep their current value.
			lookup, err := a.fees.Get(a.ctx, a.org, args[0])
			if err != nil {
				return err
			}
			fee := applyFeeFlags(cmd.Flags(), lookup.Fee)
			fee.DoctorID = args[0]

			saved, err := a.fees.Upsert(a.ctx, a.org, fee)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), saved)
		},
	}
	setCmd.Flags().Int64("recurring", 0, "Fee for recurring visits")
	setCmd.Flags().Int64("default", 0, "Default visit fee")
	setCmd.Flags().Int64("emergency", 0, "Fee for emergency visits")
	cmd.AddCommand(setCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <doctor-id>",
		Short: "Delete a doctor's fee structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			if err := a.fees.Delete(a.ctx, a.org, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted fee structure for doctor %s\n", args[0])
			return nil
		},
	}
	cmd.AddCommand(deleteCmd)

	return cmd
}

func applyFeeFlags(flags *pflag.FlagSet, fee models.FeeStructure) models.FeeStructure {
	if flags.Changed("recurring") {
		fee.RecurringFee, _ = flags.GetInt64("recurring")
	}
	if flags.Changed("default") {
		fee.DefaultFee, _ = flags.GetInt64("default")
	}
	if flags.Changed("emergency") {
		fee.EmergencyFee, _ = flags.GetInt64("emergency")
	}
	return fee
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
