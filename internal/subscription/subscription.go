package subscription

// Subscription is a newsletter signup: a unique email with the name the
// visitor submitted alongside it. No further lifecycle.
type Subscription struct {
	ID    int    `json:"subscriptionId"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
