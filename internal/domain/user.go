package domain

// User represents a persisted user record.
type User struct {
	ID    int64
	UUID  string
	Name  string
	Email string
	Phone string
	City  string
	Age   int
}

// UserFields holds every user column except the store-assigned ID.
type UserFields struct {
	UUID  string
	Name  string
	Email string
	Phone string
	City  string
	Age   int
}

// NewUser builds an unsaved user from generated fields.
func NewUser(f UserFields) *User {
	return &User{
		UUID:  f.UUID,
		Name:  f.Name,
		Email: f.Email,
		Phone: f.Phone,
		City:  f.City,
		Age:   f.Age,
	}
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	UUID  *string
	Name  *string
	Email *string
	Phone *string
	City  *string
	Age   *int
}

// IsEmpty reports whether the patch sets no field.
func (p UserPatch) IsEmpty() bool {
	return p.UUID == nil && p.Name == nil && p.Email == nil &&
		p.Phone == nil && p.City == nil && p.Age == nil
}

// Apply merges the set fields of p into u.
func (p UserPatch) Apply(u *User) {
	if p.UUID != nil {
		u.UUID = *p.UUID
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
}
