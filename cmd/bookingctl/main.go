package main

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/services/clinic_api/fees"
	"clinic-booking-service/internal/app/services/clinic_api/organizations"
	"clinic-booking-service/internal/app/services/clinic_api/schedules"
	"clinic-booking-service/internal/app/services/clinic_api/transport"
	coreFees "clinic-booking-service/internal/app/services/core/fees"
	coreSchedules "clinic-booking-service/internal/app/services/core/schedules"
	"clinic-booking-service/internal/app/services/core/session"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

type globalOptions struct {
	baseURL string
	token   string
	orgID   string
	verbose bool
}

// app is what every subcommand works with once the root flags are parsed.
type app struct {
	ctx       context.Context
	org       session.OrganizationContext
	schedules *coreSchedules.Manager
	fees      *coreFees.Manager
	log       *zap.Logger
}

func main() {
	internalConfig := config.NewInternalConfig()
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "bookingctl",
		Short: "Manage doctor schedules and fee structures on the clinic API",
	}
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", internalConfig.ClinicAPI.BaseUrl, "Clinic API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("CLINIC_API_SESSION_TOKEN"), "Session token sent to the clinic API")
	rootCmd.PersistentFlags().StringVar(&opts.orgID, "org", "", "Organization ID; resolved from the session token when empty")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log clinic API calls to stderr")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(schedulesCmd(internalConfig, opts))
	rootCmd.AddCommand(feesCmd(internalConfig, opts))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Tag: %s\n", Tag)
		},
	}
}

func newApp(cmd *cobra.Command, internalConfig *config.InternalConfig, opts *globalOptions) (*app, error) {
	log := zap.NewNop()
	if opts.verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		log = devLogger
	}

	clinicAPI := transport.NewClient(transport.Options{
		BaseUrl:                opts.baseURL,
		Timeout:                time.Duration(internalConfig.ClinicAPI.TimeoutInSeconds) * time.Second,
		MaxRequestsPerSecond:   internalConfig.ClinicAPI.MaxRequestsPerSecond,
		SessionTokenHeaderName: internalConfig.ClinicAPI.SessionTokenHeaderName,
	}, log)

	ctx := context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	ctx = session.WithSessionToken(ctx, opts.token)

	var (
		org session.OrganizationContext
		err error
	)
	if opts.orgID != "" {
		org, err = session.NewResolvedOrganizationContext(opts.orgID)
	} else {
		initializer := session.NewInitializer(organizations.NewOrganizationClient(clinicAPI, log), nil, 0, log)
		org, err = initializer.Initialize(ctx, opts.token)
	}
	if err != nil {
		return nil, err
	}

	return &app{
		ctx:       ctx,
		org:       org,
		schedules: coreSchedules.NewManager(schedules.NewScheduleClient(clinicAPI, log), log),
		fees:      coreFees.NewManager(fees.NewFeeClient(clinicAPI, log), log),
		log:       log,
	}, nil
}
