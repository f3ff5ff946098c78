package analytics

import "github.com/fleetsight/fleetsight/internal/model"

// StatusCounts partitions a record set into status buckets. Resolved is a
// strict subset of UnderAudit (audited trips with a Yes POD), and statuses
// outside the three recognized tags count only toward Total, so the named
// buckets need not sum to Total.
type StatusCounts struct {
	Total      int `json:"total"`
	Ongoing    int `json:"ongoing"`
	Closed     int `json:"closed"`
	UnderAudit int `json:"under_audit"`
	Resolved   int `json:"resolved"`
}

// Classify counts trips per status bucket.
func Classify(trips []model.Trip) StatusCounts {
	c := StatusCounts{Total: len(trips)}
	for _, t := range trips {
		switch t.Status {
		case model.StatusPendingClosure:
			c.Ongoing++
		case model.StatusCompleted:
			c.Closed++
		case model.StatusUnderAudit:
			c.UnderAudit++
			if t.POD == model.PODYes {
				c.Resolved++
			}
		}
	}
	return c
}
