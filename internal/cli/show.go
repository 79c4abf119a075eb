package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tcarmet/bmw-finder/internal/config"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
	"github.com/tcarmet/bmw-finder/internal/presenter"
	"go.uber.org/zap"
)

func newShowCmd(log *zap.Logger, cfg *config.Config) *cobra.Command {
	var used bool
	var output string

	showCmd := &cobra.Command{
		Use:   "show <vss-id>",
		Short: "Show a single vehicle by its VSS ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vssID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid vss id %q: %w", args[0], err)
			}

			mode, err := models.ParseOutputMode(output)
			if err != nil {
				return err
			}

			condition := models.ConditionNew
			if used {
				condition = models.ConditionUsed
			}

			svc := newSearchService(log, cfg)
			vehicle, err := svc.Find(cmd.Context(), condition, vssID)
			if err != nil {
				return err
			}

			criteria := models.SearchCriteria{
				Models:         []string{vehicle.Model},
				Condition:      condition,
				EquipmentMatch: models.MatchExact,
				Output:         mode,
			}
			return presenter.New(cmd.OutOrStdout()).Render([]models.Vehicle{vehicle}, criteria)
		},
	}

	showCmd.Flags().BoolVar(&used, "used", false, "look the vehicle up in the used-car inventory")
	showCmd.Flags().StringVar(&output, "output", string(models.OutputText), "output mode: ui, text or json")

	return showCmd
}
