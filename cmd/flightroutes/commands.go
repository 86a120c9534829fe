package main

import (
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/albertthomas2205/flights-routes-system/engine"
	"github.com/albertthomas2205/flights-routes-system/parser"
	"github.com/albertthomas2205/flights-routes-system/server"
	"github.com/albertthomas2205/flights-routes-system/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the flags and the state shared by all the commands.
type app struct {
	airportsFile string
	verbose      bool
	maxResults   int
	addr         string

	logger *zap.Logger
	store  *store.Memory
	engine *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "flightroutes",
		Short: "Answer route queries over a network of airports",
		Long: `flightroutes loads a network of airports, where each airport links to at
most one left and one right airport, and answers route queries over it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.airportsFile, "airports", "", "Path to the airports file (text or YAML)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	nearbyCmd := &cobra.Command{
		Use:   "nearby [start]",
		Short: "List the airports reachable from an airport by increasing distance",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runNearby,
	}
	nearbyCmd.Flags().IntVar(&a.maxResults, "max-results", 0, "Maximum number of airports to list (0 for all)")

	durationCmd := &cobra.Command{
		Use:   "duration [from] [to]",
		Short: "Find the shortest duration between two airports",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runDuration,
	}

	nthCmd := &cobra.Command{
		Use:   "nth [start] [left|right] [n]",
		Short: "Find the nth airport in a direction",
		Args:  cobra.ExactArgs(3),
		RunE:  a.runNth,
	}

	longestCmd := &cobra.Command{
		Use:   "longest",
		Short: "Find the longest direct route",
		Args:  cobra.NoArgs,
		RunE:  a.runLongest,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the airports and route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	serveCmd.Flags().StringVar(&a.addr, "addr", ":8080", "Address to listen on")

	rootCmd.AddCommand(nearbyCmd, durationCmd, nthCmd, longestCmd, serveCmd)
	return rootCmd
}

// setup builds the logger, loads the airports file and creates the engine.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.validateFlags(cmd); err != nil {
		return err
	}

	var err error
	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	a.store = store.NewMemory()
	if a.airportsFile != "" {
		airports, err := parser.ParseAirports(a.airportsFile)
		if err != nil {
			return fmt.Errorf("error reading airports file: %w", err)
		}
		if err := a.store.Load(airports); err != nil {
			return err
		}
		a.logger.Debug("Loaded airports",
			zap.String("file", a.airportsFile),
			zap.Int("airports", a.store.Len()))
	}

	a.engine = engine.New(a.store, a.logger, engine.WithMaxResults(a.maxResults))
	return nil
}

func (a *app) validateFlags(cmd *cobra.Command) error {
	if a.airportsFile == "" && cmd.Name() != "serve" {
		return fmt.Errorf("missing airports file")
	}
	if n := a.maxResults; n < 0 {
		return fmt.Errorf("max results must be non-negative, got: %d", n)
	}
	return nil
}

func (a *app) runNearby(cmd *cobra.Command, args []string) error {
	res, err := a.engine.NearbyAirports(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(w, res.Message)
		return nil
	}
	for _, r := range res.Airports {
		fmt.Fprintf(w, "%-6s %s\n", r.Code, formatDistance(r.Distance))
	}
	return nil
}

func (a *app) runDuration(cmd *cobra.Command, args []string) error {
	res, err := a.engine.Duration(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(w, res.Message)
		return nil
	}
	fmt.Fprintf(w, "duration: %s\n", formatDistance(res.Duration))
	fmt.Fprintf(w, "route:    %s\n", res.Path)
	return nil
}

func (a *app) runNth(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid number of steps %q", args[2])
	}
	res, err := a.engine.NthNode(cmd.Context(), args[0], args[1], n)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res.Found, res.Message, res.Code)
	return nil
}

func (a *app) runLongest(cmd *cobra.Command, args []string) error {
	res, err := a.engine.LongestRoute(cmd.Context())
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res.Found, res.Message,
		fmt.Sprintf("%s -> %s: %s", res.From, res.To, formatDistance(res.Distance)))
	return nil
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.New(a.engine, a.store, a.logger).Run(ctx, a.addr)
}

func printResult(w io.Writer, found bool, message string, value string) {
	if !found {
		fmt.Fprintln(w, message)
		return
	}
	fmt.Fprintln(w, value)
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
