package repos

import (
	"github.com/jmoiron/sqlx"

	"tradepost/internal/domain"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u domain.User) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(id,email,name,phone,address,profile_image)
	  VALUES(?,?,?,?,?,?)
	`, u.ID, u.Email, u.Name, u.Phone, u.Address, u.ProfileImage)
	return err
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.Get(&u, `
	  SELECT id, email, name, phone, address, profile_image, COALESCE(created_at,'') AS created_at
	  FROM users WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update rewrites profile fields and reports whether the row existed.
func (r *UserRepo) Update(u domain.User) (bool, error) {
	res, err := r.db.Exec(`
	  UPDATE users SET name=?, email=?, phone=?, address=?, profile_image=?
	  WHERE id=?
	`, u.Name, u.Email, u.Phone, u.Address, u.ProfileImage, u.ID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
