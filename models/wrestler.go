package models

import "strings"

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type Wrestler struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      Team   `json:"team"`
	Record    string `json:"record,omitempty"`
	Year      string `json:"year,omitempty"`
}

func (w Wrestler) FullName() string {
	return strings.TrimSpace(w.FirstName + " " + w.LastName)
}
