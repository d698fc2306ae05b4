package commands

import (
	"fmt"
	"slices"

	"github.com/de-tools/data-reports/pkg/models/domain"
	"github.com/de-tools/data-reports/pkg/parser"
	"github.com/de-tools/data-reports/pkg/services/report"
	"github.com/de-tools/data-reports/pkg/store/duckdb/reservation"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type RunCmd struct {
	env       *Env
	input     string
	from      string
	to        string
	month     int
	week      int
	threshold int
	chart     bool
	outputs   []string
	quiet     bool
	dbPath    string
}

func NewRunCmd(env *Env) *cobra.Command {
	rc := &RunCmd{env: env}
	cmd := &cobra.Command{
		Use:   "run <report>",
		Short: "Generate a report and deliver it to the configured outputs",
		Args:  cobra.ExactArgs(1),
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.input, "input", "", "Input file (a manifest for weekly-summary); defaults to the configured input of the report's dataset")
	cmd.Flags().StringVar(&rc.from, "from", "", "First day of the period (dd.mm.yyyy)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Last day of the period (dd.mm.yyyy)")
	cmd.Flags().IntVar(&rc.month, "month", 0, "Month number 1-12")
	cmd.Flags().IntVar(&rc.week, "week", 0, "Week number shown in the week report title")
	cmd.Flags().IntVar(&rc.threshold, "threshold", 0, "Hours from which a reservation counts as long")
	cmd.Flags().BoolVar(&rc.chart, "chart", false, "Append an ASCII chart to energy reports")
	cmd.Flags().StringSliceVarP(&rc.outputs, "output", "o", nil, "Output targets: - for the console, a file path or s3://bucket/key")
	cmd.Flags().BoolVarP(&rc.quiet, "quiet", "q", false, "Do not print the report to the console")
	cmd.Flags().StringVar(&rc.dbPath, "db", "", "Read reservations from this DuckDB archive instead of a file")

	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)
	name := args[0]

	def, err := rc.env.Registry.Get(name)
	if err != nil {
		return err
	}

	req, cleanup, err := rc.request(cmd, def)
	if err != nil {
		return err
	}
	defer cleanup()

	rep, err := def.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate report %s: %w", name, err)
	}

	lines, err := rc.env.Reporter.Render(rep)
	if err != nil {
		return err
	}
	logger.Info().Str("report", name).Int("lines", len(lines)).Msg("report generated")

	s, err := rc.env.Sinks.ParseAll(ctx, rc.targets())
	if err != nil {
		return err
	}
	return s.Deliver(ctx, lines)
}

func (rc *RunCmd) request(cmd *cobra.Command, def report.Definition) (report.Request, func(), error) {
	cfg := rc.env.Config
	cleanup := func() {}

	locale, err := rc.env.locale()
	if err != nil {
		return report.Request{}, cleanup, err
	}

	req := report.Request{
		Input:     rc.input,
		Month:     rc.month,
		Week:      rc.week,
		Threshold: cfg.LongThreshold,
		Chart:     rc.chart,
		Locale:    locale,
	}
	if cmd.Flags().Changed("threshold") {
		req.Threshold = rc.threshold
	}
	if req.Input == "" {
		req.Input = def.Dataset.Input(cfg.Inputs)
	}

	if rc.from != "" {
		period, err := parsePeriod(rc.from, rc.to)
		if err != nil {
			return report.Request{}, cleanup, err
		}
		req.Period = &period
	}

	if def.Dataset == report.DatasetReservations && rc.dbPath != "" {
		db, err := openDB(rc.dbPath)
		if err != nil {
			return report.Request{}, cleanup, err
		}
		store, err := reservation.NewStore(db)
		if err != nil {
			db.Close()
			return report.Request{}, cleanup, err
		}
		req.Reservations = store
		cleanup = func() { db.Close() }
	}

	return req, cleanup, nil
}

// targets returns the output flag, else the configured outputs, without the console when quiet.
func (rc *RunCmd) targets() []string {
	targets := rc.outputs
	if len(targets) == 0 {
		targets = rc.env.Config.Outputs
	}
	if rc.quiet {
		targets = slices.DeleteFunc(slices.Clone(targets), func(t string) bool { return t == "-" })
	}
	return targets
}

func parsePeriod(from, to string) (domain.TimePeriod, error) {
	start, err := parser.ParseDisplayDate("from", from)
	if err != nil {
		return domain.TimePeriod{}, err
	}
	end, err := parser.ParseDisplayDate("to", to)
	if err != nil {
		return domain.TimePeriod{}, err
	}
	return domain.NewTimePeriod(start, end), nil
}
