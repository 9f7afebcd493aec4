package ai

import (
	"strings"

	"github.com/Gagana-kumar/quick-mom/internal/domain/entities"
)

// BuildSummaryTranscript flattens a meeting into the transcript string the
// summary prompt consumes: title, formatted date, attendee names,
// description, then the nested topic/point outline.
func BuildSummaryTranscript(m *entities.Meeting, attendees []*entities.Attendee) string {
	names := make([]string, 0, len(m.AttendeeIDs))
	byID := make(map[string]*entities.Attendee, len(attendees))
	for _, a := range attendees {
		byID[a.ID] = a
	}
	for _, id := range m.AttendeeIDs {
		if a, ok := byID[id]; ok {
			names = append(names, a.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Meeting Title: " + m.Title + "\n")
	b.WriteString("Date: " + m.Date.Format("Monday, January 2, 2006") + "\n")
	b.WriteString("Attendees: " + strings.Join(names, ", ") + "\n")
	b.WriteString("Description: " + m.Description + "\n")
	b.WriteString("\nTopics:\n")
	for _, t := range m.Topics {
		b.WriteString("- " + t.Title + "\n")
		for _, p := range t.DiscussionPoints {
			b.WriteString("  - " + p.Text + "\n")
		}
	}
	return b.String()
}

// BuildExtractionText flattens a meeting into the text the extraction
// prompt consumes: the description plus topic and point text, nothing else.
func BuildExtractionText(m *entities.Meeting) string {
	var b strings.Builder
	b.WriteString(m.Description + "\n")
	for _, t := range m.Topics {
		b.WriteString("\nTopic: " + t.Title + "\n")
		for _, p := range t.DiscussionPoints {
			b.WriteString("- " + p.Text + "\n")
		}
	}
	return b.String()
}
