package cli

import (
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcarmet/bmw-finder/internal/application/service"
	"github.com/tcarmet/bmw-finder/internal/config"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/infrastructures/stolo"
	stoloclient "github.com/tcarmet/bmw-finder/internal/infrastructures/stolo/http/client"
	"github.com/tcarmet/bmw-finder/internal/presenter"
	"go.uber.org/zap"
)

// searchFlags mirrors the search flag surface; resolved into a
// models.SearchCriteria before anything touches the network.
type searchFlags struct {
	models    []string
	used      bool
	limit     int
	equipment []string
	match     string
	output    string
}

func addSearchFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().StringArrayVar(&f.models, "model", []string{models.DefaultModel}, "model code to search for (repeatable)")
	cmd.Flags().BoolVar(&f.used, "used", false, "search for used cars instead of new ones")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 0, "maximum number of results")
	cmd.Flags().StringArrayVar(&f.equipment, "equipment-name", nil, "required equipment/pack name (repeatable, AND semantics)")
	cmd.Flags().StringVar(&f.match, "equipment-match", string(models.MatchExact), "equipment name matching: exact or contains")
	cmd.Flags().StringVar(&f.output, "output", string(models.OutputUI), "output mode: ui, text or json")
}

// buildCriteria validates the raw flag values. All validation failures are
// reported here, before any network call.
func buildCriteria(f searchFlags, limitSet bool) (models.SearchCriteria, error) {
	output, err := models.ParseOutputMode(f.output)
	if err != nil {
		return models.SearchCriteria{}, err
	}

	match, err := models.ParseEquipmentMatch(f.match)
	if err != nil {
		return models.SearchCriteria{}, err
	}

	condition := models.ConditionNew
	if f.used {
		condition = models.ConditionUsed
	}

	criteria := models.SearchCriteria{
		Models:         f.models,
		Condition:      condition,
		EquipmentNames: f.equipment,
		EquipmentMatch: match,
		Output:         output,
	}
	if limitSet {
		limit := f.limit
		criteria.Limit = &limit
	}

	return criteria, nil
}

func newSearchService(log *zap.Logger, cfg *config.Config) *service.SearchService {
	httpClient := &http.Client{Timeout: cfg.Stolo.Timeout}
	apiClient := stoloclient.NewClient(
		cfg.Stolo.NewCarURL,
		cfg.Stolo.UsedCarURL,
		cfg.Stolo.Brand,
		cfg.Stolo.PageSize,
		httpClient,
	)
	source := stolo.NewSource(log, apiClient, cfg.Stolo.DetailsURL)
	return service.NewSearchService(log, source)
}

// NewRootCmd wires the command tree. The bare root command behaves exactly
// like the search subcommand so the short form keeps working.
func NewRootCmd(log *zap.Logger, cfg *config.Config) *cobra.Command {
	var rootFlags searchFlags
	rootCmd := &cobra.Command{
		Use:           "bmw-finder",
		Short:         "Search the BMW stock locator for new or used cars",
		Long:          "bmw-finder queries the BMW stock-locator inventory, filters by model and equipment, sorts by price and prints the result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, log, cfg, rootFlags)
		},
	}
	addSearchFlags(rootCmd, &rootFlags)

	var searchCmdFlags searchFlags
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search vehicles by model and equipment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, log, cfg, searchCmdFlags)
		},
	}
	addSearchFlags(searchCmd, &searchCmdFlags)
	_ = viper.BindPFlags(searchCmd.Flags())

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(newShowCmd(log, cfg))

	return rootCmd
}

func runSearch(cmd *cobra.Command, log *zap.Logger, cfg *config.Config, f searchFlags) error {
	criteria, err := buildCriteria(f, cmd.Flags().Changed("limit"))
	if err != nil {
		return err
	}

	svc := newSearchService(log, cfg)
	vehicles, err := svc.Run(cmd.Context(), criteria)
	if err != nil {
		return err
	}

	return presenter.New(cmd.OutOrStdout()).Render(vehicles, criteria)
}
