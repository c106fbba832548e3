package models

// Credentials is the request body of the registration and login
// endpoints. The plaintext password never travels further than the
// service layer, where it is hashed or compared and discarded.
type Credentials struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// NewBlogRequest is the request body of the blog creation endpoint.
// Likes is a pointer so that an absent field can be distinguished from
// an explicit zero; absent defaults to zero.
type NewBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  *int64 `json:"likes,omitempty"`
}

// LoginResponse is the success body of the login endpoint.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
