package user

// ToUser maps the persistence document to its API shape. A nil input maps
// to nil so "not found" propagates instead of producing an empty object.
func ToUser(u *UserData) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedOn: u.CreatedAt,
		DeletedOn: u.DeletedOn,
	}
}
