package authapimodels

type JWTResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // durée de validité en secondes
}
