package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RiveriRiv/payments-aggregator/app"
	"github.com/RiveriRiv/payments-aggregator/app/outfmt"
	"github.com/RiveriRiv/payments-aggregator/config"
	"github.com/RiveriRiv/payments-aggregator/log"
)

var v *viper.Viper

func runRootCmd(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	if len(args) < 2 {
		fmt.Fprintf(out, "Usage: %s <payments_file> <rates_file>\n", cmdName())
		return
	}

	paymentsFile := args[0]
	ratesFile := args[1]

	fmt.Fprintln(out, "Processing files:")
	fmt.Fprintln(out, "Payments:", paymentsFile)
	fmt.Fprintln(out, "Rates:", ratesFile)

	errPrinter := &log.WriterErrorPrinter{W: out}

	cfg, err := config.Load(v)
	if err != nil {
		errPrinter.F("An exception occurred: %v\n", err)
		return
	}
	log.VerboseEnabled = cfg.Verbose

	writer, err := outfmt.NewReportWriter(cfg.Format, out, cfg.OutDir)
	if err != nil {
		errPrinter.F("An exception occurred: %v\n", err)
		return
	}

	// Failures are already printed. The exit status stays 0.
	_ = app.RunPaymentsAppOnFiles(paymentsFile, ratesFile, writer, errPrinter)
}

func cmdName() string {
	binName := os.Args[0]
	return filepath.Base(binName)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   cmdName() + " PAYMENTS_FILE RATES_FILE",
	Short: "Daily EUR summary of a payments ledger",
	Long: `A cli tool which summarises a payments ledger per calendar date, in EUR.

Both files hold one record per line, with ';' separated fields:
  payments:        yyyy-MM-dd HH:mm:ss;<company>;<currency>;<amount>
  exchange rates:  yyyy-MM-dd HH:mm:ss;<from currency>;<to currency>;<rate>

Only exchange rates into EUR are used, matched to payments by date. Payments
without a rate for their date are reported as N.A. in the EUR statistics.

Options may also be set with PAYMENTS_REPORT_<OPTION> environment variables,
or in a .env file.
 `,
	Run:     runRootCmd,
	Args:    cobra.ArbitraryArgs,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(onInit)

	RootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Print verbose output")
	RootCmd.Flags().String("format", config.FormatText,
		"Report format. One of text, table, csv")
	RootCmd.Flags().String("out-dir", "",
		"Directory to write per-date CSV reports into (with --format csv)")

	v = config.NewViper()
	_ = v.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("format", RootCmd.Flags().Lookup("format"))
	_ = v.BindPFlag("out_dir", RootCmd.Flags().Lookup("out-dir"))
}

// onInit reads in the .env file if there is one, before command functions run.
func onInit() {
	config.LoadDotEnv()
}
