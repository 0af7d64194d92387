package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/abgdnv/storefront/internal/service"
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle      = lipgloss.NewStyle().Bold(true)
	priceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	starStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	heartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// formatPrice renders cents as dollars.
func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// renderStars draws the filled stars of a rating followed by the empty ones.
func renderStars(stars []bool) string {
	var b strings.Builder
	for _, filled := range stars {
		if filled {
			b.WriteString(starStyle.Render("★"))
		} else {
			b.WriteString(mutedStarStyle.Render("☆"))
		}
	}
	return b.String()
}

func renderProduct(w io.Writer, p service.ProductDto) {
	heart := " "
	if p.Favorite {
		heart = heartStyle.Render("♥")
	}
	fmt.Fprintf(w, "%s %3d  %s  %s  %s  %s\n",
		heart,
		p.ID,
		nameStyle.Render(p.Name),
		priceStyle.Render(formatPrice(p.Price)),
		renderStars(p.Stars),
		labelStyle.Render(strings.Join(p.Categories, ", ")),
	)
}

func renderPage(w io.Writer, page *service.ProductPageDto) {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, labelStyle.Render("No products match the current filters."))
	}
	for _, p := range page.Items {
		renderProduct(w, p)
	}
	if len(page.PageNumbers) > 0 {
		fmt.Fprintln(w, labelStyle.Render(fmt.Sprintf("Page %d of %d (%d products)", page.Page, page.TotalPages, page.TotalItems)))
	}
}

func renderHeader(w io.Writer, title string) {
	fmt.Fprintln(w, headerStyle.Render(title))
}
