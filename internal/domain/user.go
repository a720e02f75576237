package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	}
	return false
}

// User is a self-registered account. A missing role means member.
type User struct {
	Id     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo  string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role   Role               `bson:"role,omitempty" json:"role,omitempty"`
	Banned bool               `bson:"banned,omitempty" json:"banned,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
