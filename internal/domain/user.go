package domain

// User.ID is the identity provider's uid; passwords never touch this system.
type User struct {
	ID           string `db:"id" json:"firebaseId"`
	Email        string `db:"email" json:"email"`
	Name         string `db:"name" json:"name"`
	Phone        string `db:"phone" json:"phone,omitempty"`
	Address      string `db:"address" json:"address,omitempty"`
	ProfileImage string `db:"profile_image" json:"profileImage,omitempty"`
	CreatedAt    string `db:"created_at" json:"dateJoined"`
}
