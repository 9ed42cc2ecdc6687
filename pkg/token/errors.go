package token

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongTokenType = errors.New("wrong token type")
)

func isTokenError(err, target error) bool {
	return errors.Is(err, target)
}
