package models

// Stats holds the running aggregate for a slot. It is derived from the
// recorded shots and never persisted. Total, Max and Mean are computed
// over scored shots; Count covers every recorded shot.
type Stats struct {
	// SlotID is the slot these statistics belong to
	SlotID string `json:"slot_id"`

	// Count is the number of shots recorded for the slot
	Count int `json:"number_of_shots"`

	// Total is the sum of all scores
	Total int `json:"total_score"`

	// Max is the highest single score
	Max int `json:"max_score"`

	// Mean is the average score, 0.0 when no shot has been scored
	Mean float64 `json:"mean"`
}

// LiveStat is one emission of the live statistics stream: the shots that
// triggered the emission plus the recomputed aggregate for the slot
type LiveStat struct {
	// Scores are the shots that arrived since the previous emission
	Scores []*ShotScore `json:"scores"`

	// Stats is the aggregate over all shots for the slot to date
	Stats Stats `json:"stats"`
}
