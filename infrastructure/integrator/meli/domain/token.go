package melidomain

// TokenGrant é a resposta do endpoint /oauth/token já normalizada
type TokenGrant struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in" validate:"gt=0"`
	UserID       int64  `json:"user_id"`
	Scope        string `json:"scope"`
}
