package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartmentRef links a user to a department by id.
type DepartmentRef struct {
	DepID string `bson:"dep_id" json:"dep_id"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	RoleType     string             `bson:"role_type" json:"role_type"` // free-form, e.g. admin, head_of_office, secretary
	Departments  []DepartmentRef    `bson:"departments,omitempty" json:"departments,omitempty"`
	Payment      bool               `bson:"payment" json:"payment"`
	PhoneNumber  string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	BlockFlat    string             `bson:"blockflat,omitempty" json:"blockflat,omitempty"`
	Designation  string             `bson:"designation,omitempty" json:"designation,omitempty"`
	Photo        string             `bson:"photo,omitempty" json:"photo,omitempty"`
	LastLogin    time.Time          `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time          `bson:"timestamp" json:"timestamp"`
}

// DepartmentIDs returns the ids of the departments the user belongs to.
func (u *User) DepartmentIDs() []string {
	ids := make([]string, 0, len(u.Departments))
	for _, d := range u.Departments {
		ids = append(ids, d.DepID)
	}
	return ids
}

// Profile is the projection returned by the profile endpoint.
type Profile struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	RoleType    string          `json:"role_type"`
	Departments []DepartmentRef `json:"departments,omitempty"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Designation string          `json:"designation,omitempty"`
	Photo       string          `json:"photo,omitempty"`
}

// ToProfile projects a user onto its public profile.
func (u *User) ToProfile() Profile {
	return Profile{
		Name:        u.Name,
		Email:       u.Email,
		RoleType:    u.RoleType,
		Departments: u.Departments,
		PhoneNumber: u.PhoneNumber,
		Designation: u.Designation,
		Photo:       u.Photo,
	}
}
