package model

type Location struct {
	LocationID int     `json:"locationID"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Street     string  `json:"street"`
	District   string  `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
	Landmark   string  `json:"landmark,omitempty"`
}

type CreateLocationRequest struct {
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	Street     string  `json:"street" validate:"required"`
	District   string  `json:"district" validate:"required"`
	City       string  `json:"city" validate:"required"`
	State      string  `json:"state" validate:"required"`
	Country    string  `json:"country" validate:"required"`
	PostalCode string  `json:"postalCode" validate:"required"`
	Landmark   string  `json:"landmark,omitempty"`
}

type UpdateLocationRequest struct {
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Street     *string  `json:"street,omitempty"`
	District   *string  `json:"district,omitempty"`
	City       *string  `json:"city,omitempty"`
	State      *string  `json:"state,omitempty"`
	Country    *string  `json:"country,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Landmark   *string  `json:"landmark,omitempty"`
}
