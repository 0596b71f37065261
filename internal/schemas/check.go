package schemas

import (
	"time"

	"webeye/internal/models"
)

// CheckStatsQuery describes a window of TimeDelta seconds ending now, split
// into MaxCount equal buckets.
type CheckStatsQuery struct {
	TimeDelta int `query:"timedelta" validate:"min=300,max=172800"`
	MaxCount  int `query:"max_count" validate:"min=2,max=7"`
}

func (q *CheckStatsQuery) ApplyDefaults() {
	if q.TimeDelta == 0 {
		q.TimeDelta = 172800
	}
	if q.MaxCount == 0 {
		q.MaxCount = 7
	}
}

type CheckBucket struct {
	From   time.Time     `json:"from"`
	To     time.Time     `json:"to"`
	Total  int           `json:"total"`
	Failed int           `json:"failed"`
	Status models.Status `json:"status"`
}
