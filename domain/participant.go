// Package domain contains core concepts of the messaging system.
// This file defines Participant identities and session handles.
// No runtime, network, or UI logic should be added here.
package domain

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
	RoleService   Role = "service"
)

type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusPending   AccountStatus = "pending"
	StatusSuspended AccountStatus = "suspended"
)

// Identity is the resolved owner of a connection.
// It is fixed for the lifetime of the connection.
type Identity struct {
	UserID string
	Name   string
	Role   Role
}

// SessionID identifies one live connection.
type SessionID string

type Presence string

const (
	Online  Presence = "online"
	Offline Presence = "offline"
)
