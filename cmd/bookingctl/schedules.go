package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/models"
	"fmt"

	"github.com/spf13/cobra"
)

func schedulesCmd(internalConfig *config.InternalConfig, opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List, upsert and delete weekly doctor schedules",
	}

	listCmd := &cobra.Command{
		Use:   "list <doctor-id>",
		Short: "List a doctor's schedules in this organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			entries, err := a.schedules.List(a.ctx, a.org, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), entries)
		},
	}
	cmd.AddCommand(listCmd)

	upsertCmd := &cobra.Command{
		Use:   "upsert <doctor-id> <weekday>",
		Short: "Create or update the schedule for one weekday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			inactive, _ := cmd.Flags().GetBool("inactive")

			weekday, ok := models.ParseWeekday(args[1])
			if !ok {
				return fmt.Errorf("unknown weekday %q", args[1])
			}

			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			saved, err := a.schedules.Upsert(a.ctx, a.org, models.ScheduleEntry{
				DoctorID:  args[0],
				Weekday:   weekday,
				StartTime: start,
				EndTime:   end,
				IsActive:  !inactive,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), saved)
		},
	}
	upsertCmd.Flags().String("start", "09:00", "Start time (HH:MM)")
	upsertCmd.Flags().String("end", "17:00", "End time (HH:MM)")
	upsertCmd.Flags().Bool("inactive", false, "Store the schedule as inactive")
	cmd.AddCommand(upsertCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <doctor-id> <weekday>",
		Short: "Delete the schedule for one weekday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, ok := models.ParseWeekday(args[1])
			if !ok {
				return fmt.Errorf("unknown weekday %q", args[1])
			}

			a, err := newApp(cmd, internalConfig, opts)
			if err != nil {
				return err
			}
			if err := a.schedules.Delete(a.ctx, a.org, args[0], weekday); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s schedule for doctor %s\n", weekday, args[0])
			return nil
		},
	}
	cmd.AddCommand(deleteCmd)

	return cmd
}
