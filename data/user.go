package data

import (
	"errors"
	"strings"
)

// ErrNotAUser means a payload did not describe a user at all.
var ErrNotAUser = errors.New("payload does not describe a user")

// User is the canonical signed-in user, stored per browser session.
type User struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// GetDisplayName prefers the full name, then the email address.
func (user User) GetDisplayName() string {
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	if email := strings.TrimSpace(user.Email); email != "" {
		return email
	}

	return "Account"
}

// Initials returns up to two uppercase initials of the display name.
func (user User) Initials() string {
	parts := strings.Fields(user.FullName)
	if len(parts) == 0 {
		parts = strings.Fields(user.Email)
	}
	if len(parts) == 0 {
		return "?"
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return builder.String()
}

// RoleLabel is the role as shown in the account menu.
func (user User) RoleLabel() string {
	if user.Role == "" {
		return "Member"
	}
	role := []rune(strings.ToLower(user.Role))
	return strings.ToUpper(string(role[:1])) + string(role[1:])
}

// DeriveUser builds a User from an arbitrary authentication payload. The
// first alias holding a string wins for each field.
func DeriveUser(raw any) (User, error) {
	object, ok := AsObject(raw)
	if !ok {
		return User{}, ErrNotAUser
	}

	fullName := object.String("fullName", "full_name", "name")
	if fullName == "" {
		first := object.String("firstName", "first")
		last := object.String("lastName", "last")
		fullName = strings.TrimSpace(first + " " + last)
	}

	user := User{
		FullName: fullName,
		Email:    object.String("email", "emailAddress", "username"),
	}
	if role, ok := object["role"].(string); ok {
		user.Role = role
	} else if roles, ok := object["roles"].([]any); ok && len(roles) > 0 {
		if role, ok := roles[0].(string); ok {
			user.Role = role
		}
	}

	if user.FullName == "" && user.Email == "" && user.Role == "" {
		return User{}, ErrNotAUser
	}
	return user, nil
}

// DeriveUserFromResponse tries the nested "user" object first and the
// payload itself second.
func DeriveUserFromResponse(raw any) (User, error) {
	object, ok := AsObject(raw)
	if !ok {
		return User{}, ErrNotAUser
	}
	if nested, ok := AsObject(object["user"]); ok {
		if user, err := DeriveUser(nested); err == nil {
			return user, nil
		}
	}
	if nested, ok := AsObject(object["data"]); ok {
		if user, err := DeriveUserFromResponse(nested); err == nil {
			return user, nil
		}
	}
	return DeriveUser(object)
}

// ExtractToken returns the bearer token of an authentication response.
func ExtractToken(raw any) string {
	object, ok := AsObject(raw)
	if !ok {
		return ""
	}
	if token := object.String("token", "access_token", "accessToken", "jwt"); token != "" {
		return token
	}
	if nested, ok := AsObject(object["data"]); ok {
		return nested.String("token", "access_token", "accessToken", "jwt")
	}
	return ""
}
