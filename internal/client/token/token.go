// Package token extracts identity claims from the bearer token issued by the
// BlogTalks API. Decoding is advisory only: the client never checks the
// signature or expiry, the server remains the sole authority on token
// validity.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the identity attributes the client cares about. Absent claims
// stay as empty strings.
type Claims struct {
	SubjectID   string `json:"subjectId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// IsZero reports whether no claim at all was extracted.
func (c Claims) IsZero() bool {
	return c.SubjectID == "" && c.Email == "" && c.DisplayName == ""
}

var parser = jwt.NewParser()

// Decode extracts Claims from a raw token string without verifying the
// signature. It is total: malformed or empty input yields zero Claims,
// never an error.
func Decode(raw string) Claims {
	var out Claims
	if raw == "" {
		return out
	}

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return out
	}

	out.SubjectID = firstString(claims, "sub", "userId", "nameid")
	out.Email = firstString(claims, "email")
	out.DisplayName = firstString(claims, "displayName", "unique_name", "name")
	return out
}

// firstString returns the first of the given claim keys that holds a value,
// rendered as text. Numeric subject IDs are common in the wild, so non-string
// values are formatted rather than skipped.
func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		v, ok := claims[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return formatNumber(t)
		default:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}
