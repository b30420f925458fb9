package models

import "time"

// Source identifies which scraper feeds a zone. The zone ID doubles as the
// primary key (1:1 with Zone).
type Source struct {
	ZoneID      string    `json:"zoneID"` // Primary Key, FK -> Zone
	Name        string    `json:"name"`
	SourceURL   string    `json:"sourceURL"`
	ScraperName string    `json:"scraperName"` // Scraper identifier owned by the scraper collaborator
	Schedule    string    `json:"schedule"`    // Cron-like expression, informational for the scheduler
	CreatedAt   time.Time `json:"createdAt"`
}
