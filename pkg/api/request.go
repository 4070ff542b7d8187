package api

// UserRequest is the payload of a create-user call.
type UserRequest struct {
	Username  string `json:"username" validate:"notblank,min=2,max=30"`
	Email     string `json:"email" validate:"notblank,email"`
	Password  string `json:"password" validate:"notblank,min=4"`
	FirstName string `json:"firstName" validate:"notblank"`
	LastName  string `json:"lastName" validate:"notblank"`
}
