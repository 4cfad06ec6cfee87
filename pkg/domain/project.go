package domain

import (
	"time"
)

// Project owns instances. Owner and name are immutable after creation.
type Project struct {
	Id          string
	Name        string
	Owner       string
	Blockchain  string
	Network     NetworkKind
	Status      Status
	State       State
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	return p.Id == other.Id &&
		p.Name == other.Name &&
		p.Owner == other.Owner &&
		p.Blockchain == other.Blockchain &&
		p.Network == other.Network &&
		p.Status == other.Status &&
		p.State == other.State &&
		p.Description == other.Description
}

// ProjectFindQuery is a set of equality predicates narrowing FindProjects.
//
// Empty fields are ignored and do not narrow results.
type ProjectFindQuery struct {
	Name  string
	Owner string
}

func (q ProjectFindQuery) Equal(other ProjectFindQuery) bool {
	return q.Name == other.Name && q.Owner == other.Owner
}
