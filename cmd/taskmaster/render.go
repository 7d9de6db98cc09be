package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskmaster/internal/board"
	"taskmaster/internal/model"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(28)

	columnTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	taskTitleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Faint(true)

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		model.PriorityUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

func renderBoard(columns board.Columns) string {
	rendered := make([]string, 0, len(model.Statuses()))
	for _, status := range model.Statuses() {
		tasks := columns[status]

		var b strings.Builder
		b.WriteString(columnTitleStyle.Render(fmt.Sprintf("%s (%d)", status, len(tasks))))
		b.WriteString("\n")

		if len(tasks) == 0 {
			b.WriteString(mutedStyle.Render("no tasks"))
		}
		for _, t := range tasks {
			b.WriteString("\n")
			b.WriteString(taskTitleStyle.Render(t.Title))
			b.WriteString("\n")
			b.WriteString(priorityStyle(t.Priority).Render(string(t.Priority)))
			if t.DueDate != nil {
				b.WriteString(mutedStyle.Render("  due " + t.DueDate.Format("2006-01-02")))
			}
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render(t.ID))
			b.WriteString("\n")
		}
		rendered = append(rendered, columnStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderTask(t *model.Task) string {
	var b strings.Builder
	b.WriteString(taskTitleStyle.Render(t.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %s", t.Status, priorityStyle(t.Priority).Render(string(t.Priority))))
	b.WriteString("\n")
	if t.Description != "" {
		b.WriteString(t.Description)
		b.WriteString("\n")
	}
	if t.DueDate != nil {
		b.WriteString("Due: " + t.DueDate.Format("2006-01-02") + "\n")
	}
	if t.Owner != nil {
		b.WriteString("Owner: " + t.Owner.Username + "\n")
	}
	if len(t.AssignedTo) > 0 {
		names := make([]string, 0, len(t.AssignedTo))
		for _, u := range t.AssignedTo {
			if u.Username != "" {
				names = append(names, u.Username)
			} else {
				names = append(names, u.ID)
			}
		}
		b.WriteString("Assigned: " + strings.Join(names, ", ") + "\n")
	}
	if len(t.Comments) > 0 {
		b.WriteString("\nComments:\n")
		for _, c := range t.Comments {
			author := "unknown"
			if c.Author != nil && c.Author.Username != "" {
				author = c.Author.Username
			}
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				mutedStyle.Render(c.CreatedAt.Format("2006-01-02 15:04")), author, c.Content))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func priorityStyle(p model.Priority) lipgloss.Style {
	if style, ok := priorityStyles[p]; ok {
		return style
	}
	return mutedStyle
}
