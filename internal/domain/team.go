package domain

// VacationRange is a personal time-off span owned by a single team member.
// It reduces only that member's contribution to capacity.
type VacationRange struct {
	ID    string
	Range DateRange
}

type TeamMember struct {
	ID        string
	Name      string
	Vacations []VacationRange
}

// Clone returns a deep copy of the member, including vacation ranges.
func (m TeamMember) Clone() TeamMember {
	out := m
	out.Vacations = make([]VacationRange, len(m.Vacations))
	copy(out.Vacations, m.Vacations)
	return out
}

type Team struct {
	ID      string
	Name    string
	Members []TeamMember
}

// Clone returns a deep copy of the team and all its members.
func (t Team) Clone() Team {
	out := t
	out.Members = make([]TeamMember, len(t.Members))
	for i, m := range t.Members {
		out.Members[i] = m.Clone()
	}
	return out
}

// FindMember returns the member with the given id, or nil.
func (t *Team) FindMember(memberID string) *TeamMember {
	for i := range t.Members {
		if t.Members[i].ID == memberID {
			return &t.Members[i]
		}
	}
	return nil
}
