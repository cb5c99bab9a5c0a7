// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/project) and
// the identifier brand system lives in domain/id.
//
// This root package holds the owner markers and identifier aliases for each
// entity kind, sentinel errors, validation types, and the domain-level
// interfaces (Action, WriteStager) shared by all entities.
package domain
