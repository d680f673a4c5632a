package service

import (
	"time"

	"gromeuse/internal/entity"
	"gromeuse/internal/utils"
)

// JWTSessionMinter issues session tokens carrying the account's identity
// and role claims.
type JWTSessionMinter struct {
	Manager *utils.JWTManager
}

func (j JWTSessionMinter) IssueSessionToken(user *entity.User) (string, time.Duration, error) {
	if j.Manager == nil {
		return "", 0, ErrInvalidToken
	}
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}
	return j.Manager.IssueSessionToken(user.ID.String(), user.Name, roles, user.IsVerified)
}
