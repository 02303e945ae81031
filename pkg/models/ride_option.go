package models

import "fmt"

type RideOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	WaitTime    string `json:"wait_time"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Position    int    `json:"position"`
}

// Price renders the fare with its currency prefix, e.g. R25.50.
func (r RideOption) Price() string {
	return fmt.Sprintf("%s%d.%02d", r.Currency, r.PriceCents/100, r.PriceCents%100)
}

func DefaultRideOptions() []*RideOption {
	return []*RideOption{
		{ID: "standard", Name: "Standard Ride", PriceCents: 2550, Currency: "R", WaitTime: "5 min", Description: "Reliable rides for students", Discount: "15% student discount", Position: 1},
		{ID: "campus", Name: "Campus Shuttle", PriceCents: 1275, Currency: "R", WaitTime: "8 min", Description: "Shared rides around campus", Discount: "50% campus special", Position: 2},
		{ID: "group", Name: "Group Ride", PriceCents: 3825, Currency: "R", WaitTime: "6 min", Description: "Split fare with friends (up to 4)", Discount: "20% group discount", Position: 3},
		{ID: "latenight", Name: "Safe Night Ride", PriceCents: 2850, Currency: "R", WaitTime: "4 min", Description: "24/7 safe transportation", Discount: "Priority verified drivers", Position: 4},
		{ID: "express", Name: "Express Ride", PriceCents: 3500, Currency: "R", WaitTime: "3 min", Description: "Fastest available ride", Discount: "10% student discount", Position: 5},
	}
}
