package account

// UserProfile carries the fields asserted by the identity provider.
type UserProfile struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Connection is a federated identity assertion: the provider key plus the
// profile it vouches for.
type Connection struct {
	ProviderID     string      `json:"provider_id"`
	ProviderUserID string      `json:"provider_user_id"`
	Profile        UserProfile `json:"profile"`
}

type SocialSignUpRequest struct {
	ProviderID     string `json:"provider_id" binding:"required"`
	ProviderUserID string `json:"provider_user_id" binding:"required"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	LangKey        string `json:"lang_key"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Login       string   `json:"login"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	Activated   bool     `json:"activated"`
	LangKey     string   `json:"lang_key"`
	Authorities []string `json:"authorities"`
}
