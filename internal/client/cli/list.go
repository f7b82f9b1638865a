package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/gophvault/internal/client/models"
	"github.com/dmitrijs2005/gophvault/internal/client/vault"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func renderEntries(page []models.Entry) string {
	rows := make([][]string, 0, len(page))
	for _, e := range page {
		rows = append(rows, []string{e.ID, e.Name, e.Username, e.Category, e.URL})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("ID", "NAME", "USERNAME", "CATEGORY", "URL").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func describeView(f vault.Filters, p vault.Pagination) string {
	parts := []string{fmt.Sprintf("Page %d of %d (%d entries)", p.Page, max(1, p.TotalPages()), p.Total)}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.Search))
	}
	if f.Category != "" {
		parts = append(parts, "category "+f.Category)
	}
	return strings.Join(parts, ", ")
}

// List prints the current page of the vault.
func (a *App) List(_ context.Context) error {
	page := a.engine.Page()
	if len(page) == 0 {
		fmt.Fprintln(a.out, "No entries found")
	} else {
		fmt.Fprintln(a.out, renderEntries(page))
	}
	fmt.Fprintln(a.out, dimStyle.Render(describeView(a.engine.Filters(), a.engine.Pagination())))
	return nil
}

// Search sets the free-text filter; an empty query clears it.
func (a *App) Search(ctx context.Context, query string) error {
	a.engine.UpdateFilters(vault.WithSearch(strings.TrimSpace(query)))
	return a.List(ctx)
}

// Category filters by category; "all" clears the filter.
func (a *App) Category(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "all") {
		a.engine.UpdateFilters(vault.WithoutCategory())
		return a.List(ctx)
	}

	for _, c := range models.Categories {
		if strings.EqualFold(c, name) {
			a.engine.UpdateFilters(vault.WithCategory(c))
			return a.List(ctx)
		}
	}

	a.notifier.Error(fmt.Sprintf("Unknown category %q, choose one of All, %s", name, strings.Join(models.Categories, ", ")))
	return fmt.Errorf("unknown category %q", name)
}

func (a *App) paginate(ctx context.Context, opt vault.PaginationOption) error {
	if err := a.engine.UpdatePagination(opt); err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return a.List(ctx)
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

// Page jumps to page n.
func (a *App) Page(ctx context.Context, n string) error {
	page, err := parseNumber(n)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return a.paginate(ctx, vault.WithPage(page))
}

// PageSize changes the number of entries per page and returns to page 1.
func (a *App) PageSize(ctx context.Context, n string) error {
	size, err := parseNumber(n)
	if err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	if err := a.engine.UpdatePagination(vault.WithPageSize(size), vault.WithPage(1)); err != nil {
		a.notifier.Error(err.Error())
		return err
	}
	return a.List(ctx)
}

// Next moves one page forward.
func (a *App) Next(ctx context.Context) error {
	p := a.engine.Pagination()
	if p.Page >= p.TotalPages() {
		a.notifier.Info("Already on the last page")
		return nil
	}
	return a.paginate(ctx, vault.WithPage(p.Page+1))
}

// Prev moves one page back.
func (a *App) Prev(ctx context.Context) error {
	p := a.engine.Pagination()
	if p.Page <= 1 {
		a.notifier.Info("Already on the first page")
		return nil
	}
	return a.paginate(ctx, vault.WithPage(p.Page-1))
}
