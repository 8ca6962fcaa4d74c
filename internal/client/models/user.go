package models

// User is the profile returned by login/signup as "userInfo".
// It is immutable for the life of a session.
type User struct {
	// ID identifies the user in card paths (/api/{userId}/cards/...).
	ID ID `json:"id"`
	// Username is the login name.
	Username string `json:"username"`
	// Email is the contact address given at signup.
	Email string `json:"email"`
}

// Session is what the session store persists: the opaque bearer token and
// the profile of the user it belongs to.
type Session struct {
	Token string
	User  User
}
