package dto

// Pipeline run statuses.
const (
	PipelineStatusCompleted    = "completed"
	PipelineStatusZoneInactive = "zone_inactive"
	PipelineStatusNoData       = "no_data"
)

// PipelineRunSummary is the result accumulator of one pipeline run. Per-record
// problems never abort a run; they are tallied here instead.
type PipelineRunSummary struct {
	ZoneID           string  `json:"zoneID"`
	Status           string  `json:"status"`
	PublicationDate  *string `json:"publicationDate,omitempty"`
	Injected         int     `json:"injected"`
	SkippedIdentical int     `json:"skippedIdentical"`
	Unresolved       int     `json:"unresolved"`
	Inactive         int     `json:"inactive"`
	Errors           int     `json:"errors"`
}
