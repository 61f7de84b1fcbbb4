package team

// ToTeam maps the persistence document to its API shape; nil maps to nil.
// Relation fields stay as id lists, the resolver layer expands them.
func ToTeam(t *TeamData) *Team {
	if t == nil {
		return nil
	}
	return &Team{
		ID:         t.ID,
		Name:       t.Name,
		Address:    t.Address,
		CoachesIDs: t.CoachesIDs,
		TagIDs:     t.TagIDs,
		DeletedOn:  t.DeletedOn,
		DeletedBy:  t.DeletedBy,
	}
}
