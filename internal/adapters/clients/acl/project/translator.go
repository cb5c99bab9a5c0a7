package project

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/id"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
)

// Group brands identifiers issued by the downstream API for its groups.
type Group struct{}

// GroupID is a downstream group identifier. It is kept distinct from
// domain.ProjectID so that the two vocabularies only meet in this package.
type GroupID = id.ID[Group]

// GroupIDFromNumber wraps the text of a downstream JSON number.
func GroupIDFromNumber(n json.Number) GroupID {
	return id.New[Group](n.String())
}

// GroupNumber renders a group ID as the JSON number the downstream expects.
func GroupNumber(g GroupID) json.Number {
	return json.Number(g.String())
}

// ToProjectID converts a downstream group ID to a domain project ID.
func ToProjectID(g GroupID) domain.ProjectID {
	return id.Retag[domain.ProjectOwner](g)
}

// ToGroupID converts a domain project ID to a downstream group ID.
func ToGroupID(p domain.ProjectID) GroupID {
	return id.Retag[Group](p)
}

// ToDomainProject converts a downstream GroupDTO to a domain Project entity.
// The downstream "Group" concept maps to our domain "Project" concept.
func ToDomainProject(dto GroupDTO) project.Project {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return project.Project{
		ID:          ToProjectID(GroupIDFromNumber(dto.ID)),
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ToDomainProjectList converts a downstream GroupListResponseDTO to a slice of
// domain Project entities.
func ToDomainProjectList(dto GroupListResponseDTO) []project.Project {
	projects := make([]project.Project, len(dto.Groups))
	for i := range dto.Groups {
		projects[i] = ToDomainProject(dto.Groups[i])
	}
	return projects
}

// ToCreateGroupRequest converts a domain Project entity to a downstream
// CreateGroupRequestDTO.
func ToCreateGroupRequest(p *project.Project) CreateGroupRequestDTO {
	return CreateGroupRequestDTO{
		Name:        p.Name,
		Description: p.Description,
	}
}

// ToUpdateGroupRequest converts a domain Project entity to a downstream
// UpdateGroupRequestDTO. All fields are set (full replacement semantics).
func ToUpdateGroupRequest(p *project.Project) UpdateGroupRequestDTO {
	return UpdateGroupRequestDTO{
		Name:        &p.Name,
		Description: &p.Description,
	}
}
