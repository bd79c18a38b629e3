package entity

// User represents a core domain entity without infrastructure concerns.
// Every attribute is optional so the same type can carry a partial update;
// a nil field means "not provided".
type User struct {
	ID          *int64
	Email       *string
	FirstName   *string
	LastName    *string
	BirthDate   *Date
	Address     *string
	PhoneNumber *string
}

// HasEmail reports whether the user's email equals email byte for byte.
func (u *User) HasEmail(email string) bool {
	return u.Email != nil && *u.Email == email
}

// HasID reports whether the user carries the given id.
func (u *User) HasID(id int64) bool {
	return u.ID != nil && *u.ID == id
}

// Merge returns a copy of u with every non-nil field of patch applied.
// The patch id is ignored; identity belongs to the stored record.
func (u User) Merge(patch *User) User {
	if patch == nil {
		return u
	}
	if patch.Email != nil {
		u.Email = patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if patch.BirthDate != nil {
		u.BirthDate = patch.BirthDate
	}
	if patch.Address != nil {
		u.Address = patch.Address
	}
	if patch.PhoneNumber != nil {
		u.PhoneNumber = patch.PhoneNumber
	}
	return u
}
