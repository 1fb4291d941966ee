package domain

// Admin is the single operator allowed into /admin. Hash is a bcrypt digest.
type Admin struct {
	Username string
	Hash     string
}
