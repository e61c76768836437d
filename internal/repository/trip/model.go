package trip

import "time"

type TripDB struct {
	ID             int64
	CourierID      int64
	EarningsFactor int64
	AssignedAt     time.Time
	IsComplete     bool
}
