package model

import "strings"

type Lead struct {
	Name        string `json:"name" csv:"name"`
	Role        string `json:"role" csv:"role"`
	Company     string `json:"company" csv:"company"`
	Industry    string `json:"industry" csv:"industry"`
	Location    string `json:"location" csv:"location"`
	LinkedInBio string `json:"linkedin_bio" csv:"linkedin_bio"`
}

// IsComplete reports whether every field carries a non-blank value.
func (l Lead) IsComplete() bool {
	for _, v := range []string{l.Name, l.Role, l.Company, l.Industry, l.Location, l.LinkedInBio} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}
