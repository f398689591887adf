package auth

// RegisterInput captures the registration payload. Role defaults to Member
// when omitted.
type RegisterInput struct {
	MemberName string  `json:"member_name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Major      *string `json:"major"`
}

// LoginInput captures the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginMember is the member snapshot embedded in the login response.
type LoginMember struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// LoginResponse is the login body; the tokens also travel as cookies.
type LoginResponse struct {
	Message      string      `json:"message"`
	Member       LoginMember `json:"member"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// RefreshResponse carries the rotated token pair.
type RefreshResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
