package entity

import "time"

// Canteen is one entry of the OpenMensa catalog
type Canteen struct {
	ID   int64
	Name string
	City string
}

// Meal is one menu line of a canteen for a given day
type Meal struct {
	Category     string
	Name         string
	StudentPrice float64
}

type Reminder struct {
	UserID    string
	CanteenID int64
	CreatedAt time.Time
}
