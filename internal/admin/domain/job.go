package domain

import "time"

// DateLayout is the calendar-date format job postings carry
const DateLayout = "2006-01-02"

// JobRecord is one job listing entry managed through the admin panel.
// The ID is assigned at creation and never reassigned.
type JobRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate"`
}

// Today returns the current date in DateLayout, the default posted date
// for a record created without one.
func Today() string {
	return time.Now().Format(DateLayout)
}
