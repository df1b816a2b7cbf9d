package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/alexanderramin/upkeep/internal/domain"
	"github.com/alexanderramin/upkeep/internal/schedule"
)

// Digest is one composed email for a single bucket of a user's tasks.
type Digest struct {
	Bucket   Bucket
	Subject  string
	HTMLBody string
	Tasks    []*domain.Task
}

// ComposeDigest renders the email for one non-empty bucket. Each task line
// shows name, category, and the computed due date; the overdue bucket adds
// the days-overdue count, and descriptions appear when present.
func ComposeDigest(bucket Bucket, tasks []*domain.Task, now time.Time) Digest {
	var subject, heading, intro, outro string
	switch bucket {
	case BucketDueTomorrow:
		subject = fmt.Sprintf("🔔 Maintenance Tasks Due Tomorrow (%d)", len(tasks))
		heading = "Tasks Due Tomorrow"
		intro = "The following maintenance tasks are due tomorrow:"
		outro = "Don't forget to complete these tasks to stay on top of your maintenance schedule!"
	case BucketDueToday:
		subject = fmt.Sprintf("⚠️ Maintenance Tasks Due Today (%d)", len(tasks))
		heading = "Tasks Due Today"
		intro = "The following maintenance tasks are due today:"
		outro = "<strong>Please complete these tasks today to stay current with your maintenance schedule!</strong>"
	case BucketOverdue:
		subject = fmt.Sprintf("🚨 Overdue Maintenance Tasks (%d)", len(tasks))
		heading = "Overdue Maintenance Tasks"
		intro = "The following maintenance tasks are overdue and need immediate attention:"
		outro = `<strong style="color: red;">These tasks require immediate attention to prevent potential issues!</strong>`
	}

	var items strings.Builder
	for _, t := range tasks {
		due := schedule.NextDueDate(t).Format("Jan 2, 2006")
		fmt.Fprintf(&items, "<li><strong>%s</strong> (%s)", html.EscapeString(t.Name), html.EscapeString(t.Category))
		if bucket == BucketOverdue {
			daysOverdue := -schedule.DaysRemaining(t, now)
			fmt.Fprintf(&items, "<br>Was due: %s", due)
			fmt.Fprintf(&items, `<br><span style="color: red;"><strong>%d days overdue</strong></span>`, daysOverdue)
		} else {
			fmt.Fprintf(&items, "<br>Due: %s", due)
		}
		if t.Description != "" {
			fmt.Fprintf(&items, "<br><em>%s</em>", html.EscapeString(t.Description))
		}
		items.WriteString("</li>")
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
<h1 style="color: #333;">Maintenance Tracker</h1>
<h2>%s</h2>
<p>%s</p>
<ul>%s</ul>
<p>%s</p>
<hr style="margin: 30px 0; border: 1px solid #eee;">
<p style="color: #666; font-size: 14px;">This email was sent from your Maintenance Tracker app.
You can manage your notification preferences in your account settings.</p>
</div>`, heading, intro, items.String(), outro)

	return Digest{Bucket: bucket, Subject: subject, HTMLBody: body, Tasks: tasks}
}

// ComposeAll returns one digest per non-empty bucket, in the fixed order
// due-tomorrow, due-today, overdue.
func ComposeAll(b Buckets, now time.Time) []Digest {
	var digests []Digest
	if len(b.DueTomorrow) > 0 {
		digests = append(digests, ComposeDigest(BucketDueTomorrow, b.DueTomorrow, now))
	}
	if len(b.DueToday) > 0 {
		digests = append(digests, ComposeDigest(BucketDueToday, b.DueToday, now))
	}
	if len(b.Overdue) > 0 {
		digests = append(digests, ComposeDigest(BucketOverdue, b.Overdue, now))
	}
	return digests
}
