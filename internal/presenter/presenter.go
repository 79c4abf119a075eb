package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/tcarmet/bmw-finder/internal/domain/models"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12")).
	PaddingRight(1)

// Presenter renders a finished result set. It never re-filters or re-sorts;
// the order it receives is the order it prints.
type Presenter struct {
	out io.Writer
}

func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Render(vehicles []models.Vehicle, criteria models.SearchCriteria) error {
	switch criteria.Output {
	case models.OutputText:
		return p.renderText(vehicles)
	case models.OutputJSON:
		return p.renderJSON(vehicles)
	default:
		return p.renderUI(vehicles, criteria)
	}
}

// renderUI echoes the effective search parameters and the match count. It
// intentionally does not enumerate vehicles.
func (p *Presenter) renderUI(vehicles []models.Vehicle, criteria models.SearchCriteria) error {
	fmt.Fprintln(p.out, titleStyle.Render("Search parameters:"))
	fmt.Fprintf(p.out, "  Condition: %s\n", criteria.Condition)
	fmt.Fprintf(p.out, "  Models: %s\n", strings.Join(criteria.Models, ", "))
	if criteria.Limit != nil {
		fmt.Fprintf(p.out, "  Limit: %d\n", *criteria.Limit)
	}
	if len(criteria.EquipmentNames) > 0 {
		fmt.Fprintf(p.out, "  Equipment names: %s\n", strings.Join(criteria.EquipmentNames, ", "))
	}
	fmt.Fprintf(p.out, "Filtered vehicles found: %d\n", len(vehicles))
	return nil
}

func (p *Presenter) renderText(vehicles []models.Vehicle) error {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(p.out, "%-36s | %-12s | %-28s | %-20s | %-12s | %-8s | %s\n",
		"Id", "Model", "Trim", "Color", "Price", "Discount", "Link")

	for _, vehicle := range vehicles {
		fmt.Fprintf(p.out, "%-36s | %-12s | %-28s | %-20s | %-12s | %-8s | %s\n",
			vehicle.VSSID,
			vehicle.Model,
			vehicle.Trim,
			vehicle.Color,
			fmt.Sprintf("%.2f €", vehicle.Price),
			fmt.Sprintf("%.2f %%", vehicle.DiscountPercent()),
			vehicle.Link,
		)
	}
	return nil
}

func (p *Presenter) renderJSON(vehicles []models.Vehicle) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	return enc.Encode(vehicles)
}
