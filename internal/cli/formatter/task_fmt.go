package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/notify"
	"github.com/alexanderramin/upkeep/internal/schedule"
)

// FormatTaskList renders a styled task list inside a bordered box. Urgency is
// evaluated against the supplied clock.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	headers := []string{"ID", "NAME", "CATEGORY", "STATUS", "DUE"}
	rows := make([][]string, 0, len(tasks))

	for _, t := range tasks {
		d := schedule.DaysRemaining(t, now)
		info := schedule.Classify(d)
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			Bold(Truncate(t.Name, 40)),
			StyleBlue.Render(t.Category),
			StatusIndicator(info.Status),
			StatusColor(info.Status).Render(info.Label),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Maintenance Tasks", table)
}

// FormatTaskDetail renders a single-task inspect card.
func FormatTaskDetail(t *domain.Task, now time.Time) string {
	d := schedule.DaysRemaining(t, now)
	info := schedule.Classify(d)
	due := schedule.NextDueDate(t)

	var b strings.Builder
	b.WriteString(StyleBold.Render(t.Name) + "\n")
	b.WriteString(StyleBlue.Render(t.Category) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS   "), StatusIndicator(info.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DUE      "), StatusColor(info.Status).Render(info.Label)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("NEXT DUE "), StyleFg.Render(due.Format("2006-01-02"))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("INTERVAL "), StyleFg.Render(fmt.Sprintf("every %d days", t.IntervalDays))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LAST DONE"), StyleFg.Render(t.LastCompleted.Format("2006-01-02"))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UUID     "), Dim(t.ID)))

	if t.Description != "" {
		b.WriteString("\n" + StyleDim.Render("NOTES") + "\n")
		b.WriteString(StyleFg.Render(t.Description) + "\n")
	}

	return RenderBox("", b.String())
}

// FormatHistory renders a task's completion log, most recent first.
func FormatHistory(taskName string, entries []*domain.HistoryEntry) string {
	headers := []string{"COMPLETED", "NOTES"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		notes := e.Notes
		if notes == "" {
			notes = Dim("--")
		}
		rows = append(rows, []string{
			StyleFg.Render(e.CompletedAt.Format("2006-01-02 15:04")),
			notes,
		})
	}
	table := RenderTable(headers, rows)
	return RenderBox("History: "+taskName, table)
}

// FormatStats renders the urgency breakdown of a task collection.
func FormatStats(stats schedule.Stats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TOTAL   "), StyleFg.Render(fmt.Sprintf("%d", stats.Total))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("OVERDUE "), StyleRed.Render(fmt.Sprintf("%d", stats.Overdue))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DUE SOON"), StyleYellow.Render(fmt.Sprintf("%d", stats.DueSoon))))
	good := stats.Total - stats.Overdue - stats.DueSoon
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GOOD    "), StyleGreen.Render(fmt.Sprintf("%d", good))))
	return RenderBox("Stats", b.String())
}

// FormatPreferences renders the notification preference card.
func FormatPreferences(p *domain.Profile) string {
	email := p.Email
	if email == "" {
		email = Dim("--")
	}
	enabled := StyleRed.Render("off")
	if p.EmailNotificationsEnabled {
		enabled = StyleGreen.Render("on")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("EMAIL    "), StyleFg.Render(email)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ENABLED  "), enabled))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("FREQUENCY"), StyleFg.Render(string(p.NotificationFrequency))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("HOUR     "), StyleFg.Render(fmt.Sprintf("%02d:00 UTC", p.NotificationTime))))
	return RenderBox("Notification Preferences", b.String())
}

// FormatDigestRun renders the outcome of one digest batch run.
func FormatDigestRun(summary *notify.Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("RAN AT   "), StyleFg.Render(summary.RanAt.Format("2006-01-02 15:04 UTC"))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UTC HOUR "), StyleFg.Render(fmt.Sprintf("%d", summary.CurrentUTCHour))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("USERS    "), StyleFg.Render(fmt.Sprintf("%d", summary.UsersProcessed))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SENT     "), StyleGreen.Render(fmt.Sprintf("%d", summary.EmailsSent))))

	if len(summary.Results) > 0 {
		b.WriteString("\n")
		headers := []string{"USER", "BUCKET", "TASKS", "RESULT"}
		rows := make([][]string, 0, len(summary.Results))
		for _, r := range summary.Results {
			outcome := StyleGreen.Render("sent")
			if r.Err != nil {
				outcome = StyleRed.Render(Truncate(r.Err.Error(), 40))
			}
			rows = append(rows, []string{
				StyleFg.Render(r.UserID),
				StyleBlue.Render(string(r.Bucket)),
				StyleFg.Render(fmt.Sprintf("%d", r.TaskCount)),
				outcome,
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	return RenderBox("Digest Run", b.String())
}
