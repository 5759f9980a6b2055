package market

// Directory is an ordered user collection keyed by identifier. Iteration
// follows insertion order; a repeated identifier replaces the earlier entry in
// place.
type Directory struct {
	order []User
	index map[string]int
}

// NewDirectory builds a directory from the supplied users.
func NewDirectory(users []User) *Directory {
	d := &Directory{index: make(map[string]int, len(users))}
	for _, u := range users {
		d.Put(u)
	}
	return d
}

// Put inserts or replaces a user.
func (d *Directory) Put(u User) {
	if idx, ok := d.index[u.ID]; ok {
		d.order[idx] = u
		return
	}
	d.index[u.ID] = len(d.order)
	d.order = append(d.order, u)
}

// Lookup returns the user with the given identifier.
func (d *Directory) Lookup(id string) (User, bool) {
	if d == nil {
		return User{}, false
	}
	idx, ok := d.index[id]
	if !ok {
		return User{}, false
	}
	return d.order[idx], true
}

// All returns a copy of the users in source order.
func (d *Directory) All() []User {
	if d == nil || len(d.order) == 0 {
		return nil
	}
	dup := make([]User, len(d.order))
	copy(dup, d.order)
	return dup
}

// Len reports the number of users.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}
