package domain

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Registration struct {
	Name     string
	Email    string
	Phone    string
	Password string
}
