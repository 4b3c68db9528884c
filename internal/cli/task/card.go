package task

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tracker/internal/cli"
	"github.com/thenoetrevino/tracker/internal/models"
)

const cardWidth = 60

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(1, 2).
			Width(cardWidth)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	overdueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#C0392B")).
			Padding(0, 1)
)

// renderCard renders t as a bordered card. now decides the overdue badge.
func renderCard(t *models.Task, now time.Time) string {
	v := cli.NewTaskView(t)
	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("#%d %s", v.ID, v.Title)))
	content.WriteString("\n\n")

	if t.Deadline != nil && !t.IsDone() && t.Deadline.Before(now) {
		content.WriteString(overdueStyle.Render("OVERDUE"))
		content.WriteString("\n\n")
	}

	field := func(label, value string) {
		content.WriteString(labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n")
	}
	field("Status", v.StatusLabel)
	field("Priority", v.PriorityLabel)
	field("Project", fmt.Sprintf("%d", v.ProjectID))
	if v.Deadline != nil {
		field("Deadline", v.Deadline.Local().Format("2006-01-02 15:04"))
	}

	content.WriteString("\n")
	content.WriteString(subtleStyle.Render(fmt.Sprintf("Created %s  Updated %s",
		v.CreatedAt.Local().Format("2006-01-02 15:04"),
		v.UpdatedAt.Local().Format("2006-01-02 15:04"))))

	return cardStyle.Render(content.String())
}
