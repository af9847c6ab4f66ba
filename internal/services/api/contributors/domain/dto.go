// Package domain holds DTOs for contributors http and service contracts
package domain

// Contributor is a user projection ranked on the contributors board
type Contributor struct {
	ID         string `json:"$id"`
	Name       string `json:"name"`
	Reputation int    `json:"reputation"`
	UpdatedAt  string `json:"$updatedAt"`
}

// TopContributors is the board payload
type TopContributors struct {
	Total int           `json:"total"`
	Users []Contributor `json:"users"`
}
