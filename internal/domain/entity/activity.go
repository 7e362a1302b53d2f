package entity

import "time"

// Aspect types carried by provider webhook events.
const (
	AspectCreate = "create"
	AspectUpdate = "update"
)

// ObjectTypeActivity is the only webhook object type Gravity processes.
const ObjectTypeActivity = "activity"

// ActivityEvent is the transient payload of a provider webhook delivery.
// It is consumed once and never persisted.
type ActivityEvent struct {
	ObjectType string `json:"object_type"`
	AspectType string `json:"aspect_type"`
	OwnerID    int64  `json:"owner_id"`
	ObjectID   int64  `json:"object_id"`
}

// IsActivityChange reports whether this event describes an activity
// creation or update, the only deliveries that trigger processing.
func (e *ActivityEvent) IsActivityChange() bool {
	return e.ObjectType == ObjectTypeActivity &&
		(e.AspectType == AspectCreate || e.AspectType == AspectUpdate)
}

// ActivityDetail is the transient, provider-fetched description of a
// single activity as consumed by the rule engine.
type ActivityDetail struct {
	Category         string // Provider sport type, e.g. "Run", "WeightTraining".
	MovingTimeSec    int
	AverageHeartrate float64
	DistanceMeters   float64
	StartDate        time.Time
	DisplayName      string
	IsManualEntry    bool
}

// Date returns the activity's calendar date in UTC, the (user, date)
// reconciliation key component.
func (d *ActivityDetail) Date() string {
	return d.StartDate.UTC().Format("2006-01-02")
}
