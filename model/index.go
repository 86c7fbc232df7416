package model

// TokenClaim is what the auth guard extracts from a verified access token.
type TokenClaim struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
