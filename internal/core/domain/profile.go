package domain

import "errors"

var ErrProfileNotFound = errors.New("profile not found")

// Address is the mailing address section of a profile.
type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
}

// Profile holds the editable account details shown on the profile pages,
// keyed by username. The authentication fields live on Identity instead.
type Profile struct {
	Username string  `json:"username" bson:"username"`
	Name     string  `json:"name" bson:"name"`
	Email    string  `json:"email" bson:"email"`
	Bio      string  `json:"bio" bson:"bio"`
	Phone    string  `json:"phone" bson:"phone"`
	Address  Address `json:"address" bson:"address"`
}
