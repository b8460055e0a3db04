package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jhoicas/invoice-dashboard/internal/infrastructure/seed"
)

var (
	accent  = lipgloss.Color("#2563EB")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(dim).Width(12)
	countStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

func renderMigrations(applied []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Migraciones aplicadas"))
	for _, name := range applied {
		b.WriteString("\n  " + countStyle.Render("✓") + " " + name)
	}
	return boxStyle.Render(b.String())
}

func renderSummary(s seed.Summary) string {
	rows := []struct {
		label string
		n     int64
	}{
		{"users", s.Users},
		{"customers", s.Customers},
		{"invoices", s.Invoices},
		{"revenue", s.Revenue},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Filas insertadas"))
	for _, r := range rows {
		b.WriteString("\n" + labelStyle.Render(r.label) + countStyle.Render(fmt.Sprint(r.n)))
	}
	return boxStyle.Render(b.String())
}
