package domain

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	// Photo is the public path of the uploaded profile photo, empty if none.
	Photo string
}
