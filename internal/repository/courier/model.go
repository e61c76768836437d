package courier

import "time"

type CourierDB struct {
	ID          int64
	CourierType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type WorkingHoursDB struct {
	CourierID   int64
	StartMinute int
	EndMinute   int
}
