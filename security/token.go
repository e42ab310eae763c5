package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Operator is the person running a scan console at a site.
type Operator struct {
	ID       int
	Username string
	Site     string
}

type OperatorIdentity struct {
	ID       int    `json:"nameid"`
	Username string `json:"unique_name"`
	Site     string `json:"site"`
}

type OperatorClaims struct {
	OperatorIdentity
	jwt.RegisteredClaims
}

// CreateOperatorToken signs an HS256 token for a scan console login. The
// secret arrives base64-encoded, same form it is stored in the environment.
func CreateOperatorToken(operator *Operator, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := OperatorClaims{
		OperatorIdentity: OperatorIdentity{
			ID:       operator.ID,
			Username: operator.Username,
			Site:     operator.Site,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "absensi",
			Audience:  []string{"*.absensi.example"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}
