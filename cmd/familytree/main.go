package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/N3moAhead/familytree/internal/loader"
	"github.com/N3moAhead/familytree/internal/metrics"
	"github.com/N3moAhead/familytree/internal/migration"
	"github.com/N3moAhead/familytree/internal/person"
	"github.com/N3moAhead/familytree/internal/relation"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var (
	seedPath    string
	debug       bool
	logFile     string
	metricsAddr string

	logger *zap.SugaredLogger

	rootCmd = &cobra.Command{
		Use:   "familytree",
		Short: "Answers kinship questions about a seeded family tree",
		Long: `familytree loads a seed file of families (husband, wife, sons, daughters)
and answers relationship questions such as uncles, cousins or grandparents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(cmd.Name() == browseCmd.Name())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			if metricsAddr != "" {
				serveMetrics(metricsAddr)
			}
			return nil
		},
	}
	familiesCmd = &cobra.Command{
		Use:   "families",
		Short: "Lists every family in the seed",
		Args:  cobra.NoArgs,
		RunE:  runFamilies,
	}
	queryCmd = &cobra.Command{
		Use:   "query [relation] [person]",
		Short: "Prints the people related to a person",
		Long:  `Prints the comma separated names of everyone in the given relation to the person. Run "familytree relations" for the vocabulary.`,
		Args:  cobra.ExactArgs(2),
		RunE:  runQuery,
	}
	relationsCmd = &cobra.Command{
		Use:   "relations",
		Short: "Lists the supported relations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range relation.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
	browseCmd = &cobra.Command{
		Use:   "browse",
		Short: "Browses and edits the tree interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Upgrades the seed file to the current format in place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := migration.RunMigrations(seedPath)
			if err != nil {
				return err
			}
			if changed {
				logger.Infow("Migrated seed", "seed", seedPath, "version", migration.CurrentVersion)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "family.yaml", "Path to the seed file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9100)")

	rootCmd.AddCommand(familiesCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(relationsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(migrateCmd)
}

// newLogger builds a development logger with --debug and a production one
// otherwise. An interactive session without a log file gets a no-op logger
// so output does not tear the screen.
func newLogger(interactive bool) (*zap.SugaredLogger, error) {
	if interactive && logFile == "" {
		return zap.NewNop().Sugar(), nil
	}

	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Infow("Serving metrics", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Errorw("Metrics server stopped", "error", err)
		}
	}()
}

func openRelationships() (*relation.Relationships, error) {
	t, err := loader.LoadFile(seedPath, logger)
	if err != nil {
		return nil, err
	}
	if _, err := metrics.WatchFamilies(t.FamilyCount); err != nil {
		return nil, fmt.Errorf("failed to register families gauge: %w", err)
	}
	return relation.New(t), nil
}

func runFamilies(cmd *cobra.Command, args []string) error {
	rel, err := openRelationships()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range rel.Tree().Families() {
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s + %s", f.Husband, f.Wife)))
		children := "no children"
		if len(f.Children) > 0 {
			children = strings.Join(person.IDs(f.Children), ", ")
		}
		fmt.Fprintln(out, "  "+infoStyle.Render(children))
	}
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	rel, err := openRelationships()
	if err != nil {
		return err
	}

	people, err := rel.Query(relation.Kind(args[0]), args[1])
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), relation.Join(people))
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	rel, err := openRelationships()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(rel), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
