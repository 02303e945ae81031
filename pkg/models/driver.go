package models

type Driver struct {
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	Car       string  `json:"car"`
	Plate     string  `json:"plate"`
	ETA       string  `json:"eta"`
	PhotoURL  string  `json:"photo_url"`
	StudentID string  `json:"student_id"`
	Verified  bool    `json:"verified"`
}

// MockDriver is the only driver the app ever matches.
func MockDriver() Driver {
	return Driver{
		Name:      "Sarah Johnson",
		Rating:    4.9,
		Car:       "Toyota Camry",
		Plate:     "MHL-123-GP",
		ETA:       "3 min",
		PhotoURL:  "https://images.unsplash.com/photo-1494790108755-2616b332c3c5?w=150&h=150&fit=crop&crop=face",
		StudentID: "STU2024",
		Verified:  true,
	}
}
