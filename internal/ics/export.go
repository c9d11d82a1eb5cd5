package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"waqt/internal/model"
)

// ExportSchedule serializes an optimized schedule as an ICS calendar so
// the display layer (or any calendar client) can subscribe to it. Each
// scheduled task becomes a one-hour VEVENT at its assigned day and hour.
func ExportSchedule(items []model.ScheduledTask, calendarName string) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if calendarName != "" {
		cal.SetXWRCalName(calendarName)
	}

	now := time.Now().UTC()
	for i, item := range items {
		uid := item.Task.ID
		if uid == "" {
			uid = fmt.Sprintf("slot-%d", i)
		}
		start := time.Date(item.Day.Year(), item.Day.Month(), item.Day.Day(),
			item.Hour, 0, 0, 0, time.UTC)

		ev := cal.AddEvent(uid)
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
		summary := item.Task.Title
		if summary == "" {
			summary = item.Task.Type
		}
		ev.SetSummary(summary)
		ev.SetDescription(fmt.Sprintf("priority=%d deadline=%s",
			item.Task.Priority, item.Task.Deadline.Format("2006-01-02")))
	}

	return cal.Serialize()
}
