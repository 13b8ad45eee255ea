package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the review state of a seller application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

var ErrApplicationExists = errors.New("seller application already submitted")
var ErrApplicationNotFound = errors.New("seller application not found")

// Categories a seller can declare as their main product line.
var SellerCategories = []string{
	"Paintings",
	"Sculptures",
	"Photography",
	"Digital Art",
	"Prints",
	"Mixed Media",
	"Ceramics",
	"Textiles",
}

// SellerApplication is a customer's request to be promoted to seller,
// reviewed by the admin team.
type SellerApplication struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Username    string            `json:"username" bson:"username"`
	FirstName   string            `json:"first_name" bson:"first_name"`
	LastName    string            `json:"last_name" bson:"last_name"`
	Email       string            `json:"email" bson:"email"`
	Phone       string            `json:"phone" bson:"phone"`
	Category    string            `json:"category" bson:"category"`
	Background  string            `json:"background" bson:"background"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	SubmittedAt time.Time         `json:"submitted_at" bson:"submitted_at"`
}
