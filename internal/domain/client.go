package domain

// Client is a person who can book trips. ID is assigned by the store.
type Client struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Telephone string
	Pesel     string
}

// ClientCreateInput carries the fields needed to create a Client.
// The validate tags are enforced by the service layer before anything is written.
type ClientCreateInput struct {
	FirstName string `validate:"required,notblank,max=120"`
	LastName  string `validate:"required,notblank,max=120"`
	Email     string `validate:"required,max=120,email"`
	Telephone string `validate:"required,notblank,max=120"`
	Pesel     string `validate:"required,pesel"`
}
