package user

// User is an account record keyed by email. Passwords are stored as bcrypt
// hashes. BillingID links the default billing snapshot, when one has been
// saved at checkout.
type User struct {
	ID        int    `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	BillingID *int   `json:"billingId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
