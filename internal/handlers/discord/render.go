package discord

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/services/roster"
)

// upcomingWindow hides expeditions more than this long past their time
const upcomingWindow = 2 * time.Hour

// renderExpedition renders one expedition block with its member roster.
func renderExpedition(e *models.Expedition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚔️ %s    🕑 %s    👥 %d\n", e.Title, renderHumanTime(e.TimeOfDay()), len(e.Members))
	if e.Description != "" {
		fmt.Fprintf(&b, "📋 %s\n", e.Description)
	}
	for i, member := range e.Members {
		fmt.Fprintf(&b, "%d. %s\n", i+1, member.DisplayName())
	}
	b.WriteString("\n")
	return b.String()
}

// renderExpeditionReminder renders the reminder message: the expedition
// block plus the ready roster.
func renderExpeditionReminder(e *models.Expedition) string {
	var b strings.Builder
	b.WriteString(renderExpedition(e))
	fmt.Fprintf(&b, "Ready (👥 %d)\n", len(e.Ready))
	for i, member := range e.Ready {
		fmt.Fprintf(&b, "%d. %s\n", i+1, member.DisplayName())
	}
	return b.String()
}

// shiftBackHours moves a time of day back by an hour offset, wrapping at
// midnight. Sorting by reset-shifted time puts the expeditions right after
// the daily reset first.
func shiftBackHours(t time.Time, hours int) time.Time {
	h := t.Hour() - hours
	if h < 0 {
		h += 24
	}
	return time.Date(t.Year(), t.Month(), t.Day(), h, t.Minute(), 0, 0, t.Location())
}

// sortExpeditions orders expeditions by time of day shifted back by the
// guild's reset hour.
func sortExpeditions(expeditions []*models.Expedition, resetHour int) []*models.Expedition {
	sorted := append([]*models.Expedition{}, expeditions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return shiftBackHours(sorted[i].TimeOfDay(), resetHour).
			Before(shiftBackHours(sorted[j].TimeOfDay(), resetHour))
	})
	return sorted
}

// filterExpeditions drops expeditions more than two hours past, unless the
// current time is within two hours after the daily reset in which case the
// whole day is shown.
func filterExpeditions(expeditions []*models.Expedition, resetHour int, now time.Time) []*models.Expedition {
	sinceReset := now.Hour() - resetHour
	if sinceReset >= 0 && sinceReset <= 2 {
		return expeditions
	}

	cutoff := shiftBackHours(now.Add(-upcomingWindow), resetHour)
	cutoffMinutes := cutoff.Hour()*60 + cutoff.Minute()

	kept := make([]*models.Expedition, 0, len(expeditions))
	for _, e := range expeditions {
		at := shiftBackHours(e.TimeOfDay(), resetHour)
		if at.Hour()*60+at.Minute() > cutoffMinutes {
			kept = append(kept, e)
		}
	}
	return kept
}

// renderExpeditions renders the day's expeditions, sorted and filtered.
func renderExpeditions(g *models.Guild, now time.Time) string {
	expeditions := sortExpeditions(g.ExpeditionList(), g.ResetHour())
	expeditions = filterExpeditions(expeditions, g.ResetHour(), now)

	if len(expeditions) == 0 {
		return "No expeditions\n"
	}

	var b strings.Builder
	for _, e := range expeditions {
		b.WriteString(renderExpedition(e))
	}
	return b.String()
}

// renderGuildSummary renders the pinned summary message body.
func renderGuildSummary(g *models.Guild, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Guild Admin %d/%d\n\n", now.Month(), now.Day())
	b.WriteString(renderExpeditions(g, now))
	b.WriteString("\n")
	b.WriteString(renderAdvancedHelp())
	return b.String()
}

func renderAdvancedHelp() string {
	return `Advanced commands:
Register with alt: /exped reg <team> <alt>
Create new expedition: /exped new <team> <HHMM> <description>
Delete expedition: /exped delete <team>
`
}

// renderFortReport renders the combined attendance report sorted by count
// descending, then name.
func renderFortReport(records map[string]*models.FortRecord) string {
	if len(records) == 0 {
		return "No fort attendance recorded"
	}

	entries := make([]*models.FortRecord, 0, len(records))
	for _, record := range records {
		entries = append(entries, record)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Identity.DisplayName() < entries[j].Identity.DisplayName()
	})

	var b strings.Builder
	b.WriteString("🏰 Fort attendance\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%d. %s — %d\n", i+1, entry.Identity.DisplayName(), entry.Count)
	}
	return b.String()
}

// renderFortRoster renders the external ranked roster feed.
func renderFortRoster(entries []roster.Entry) string {
	if len(entries) == 0 {
		return "Fort roster is empty"
	}

	var b strings.Builder
	b.WriteString("🏰 Fort roster\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, entry.Name, entry.Role)
	}
	return b.String()
}

// renderHumanTime formats a time of day the way guild members say it:
// "7pm", "7.30pm".
func renderHumanTime(t time.Time) string {
	if t.Minute() > 0 {
		return strings.ToLower(strings.TrimPrefix(t.Format("3.04PM"), "0"))
	}
	return strings.ToLower(strings.TrimPrefix(t.Format("3PM"), "0"))
}

// summaryComponents builds the pinned summary's interactive rows: one join
// button per upcoming expedition, plus the fort attendance row.
func summaryComponents(g *models.Guild, now time.Time) []discordgo.MessageComponent {
	expeditions := sortExpeditions(g.ExpeditionList(), g.ResetHour())
	expeditions = filterExpeditions(expeditions, g.ResetHour(), now)

	var rows []discordgo.MessageComponent
	for _, e := range expeditions {
		// Discord caps action rows per message; the fort row needs the last slot
		if len(rows) >= 4 {
			break
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("Join %s (%s)", e.Title, renderHumanTime(e.TimeOfDay())),
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonExpeditionJoin + models.Slug(e.Title),
				},
			},
		})
	}

	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Went fort today",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonFortMark,
			},
			discordgo.Button{
				Label:    "My fort count",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonFortCheck,
			},
		},
	})
	return rows
}

// reminderComponents builds the single ready button under a reminder.
func reminderComponents(e *models.Expedition) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "I'm ready!",
					Style:    discordgo.SuccessButton,
					CustomID: ButtonExpeditionReady + models.Slug(e.Title),
				},
			},
		},
	}
}
