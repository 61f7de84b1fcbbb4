package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/team"
)

var addressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Address",
	Fields: graphql.Fields{
		"name":        &graphql.Field{Type: graphql.String},
		"street":      &graphql.Field{Type: graphql.String},
		"city":        &graphql.Field{Type: graphql.String},
		"zip":         &graphql.Field{Type: graphql.String},
		"countryCode": &graphql.Field{Type: graphql.String},
		"contactName": &graphql.Field{Type: graphql.String},
		"email":       &graphql.Field{Type: graphql.String},
		"phone":       &graphql.Field{Type: graphql.String},
	},
})

var teamType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Team",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"address":    &graphql.Field{Type: addressType},
		"coachesIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
		"tagIds":     &graphql.Field{Type: graphql.NewList(graphql.ID)},
		"deletedOn":  &graphql.Field{Type: graphql.DateTime},
	},
})

var teamFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TeamFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"hasTags":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.ID)},
	},
})

var createTeamInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTeamInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"orgName":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"street":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"city":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"zip":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"countryCode": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"contactName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var updateTeamInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTeamInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"orgName":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"street":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"zip":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"countryCode": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"contactName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":       &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func wireTeamRelations() {
	teamType.AddFieldConfig("coaches", &graphql.Field{
		Type: graphql.NewList(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t := p.Source.(*team.Team)
			return dsFrom(p.Context).Users.GetUsersByIDs(p.Context, t.CoachesIDs)
		},
	})
	teamType.AddFieldConfig("tags", &graphql.Field{
		Type: graphql.NewList(tagType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t := p.Source.(*team.Team)
			return dsFrom(p.Context).Tags.GetTagsByIDs(p.Context, t.TagIDs)
		},
	})
	teamType.AddFieldConfig("registrations", &graphql.Field{
		Type: graphql.NewList(registrationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			t := p.Source.(*team.Team)
			return dsFrom(p.Context).Registrations.GetTeamRegistrations(p.Context, t.ID)
		},
	})
}

func teamQueries() graphql.Fields {
	return graphql.Fields{
		"getTeam": &graphql.Field{
			Type: teamType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.GetTeam(p.Context, stringArg(p.Args, "id"))
			},
		},
		"getTeams": &graphql.Field{
			Type: graphql.NewList(teamType),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: teamFilterInputType},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				f := filterArg(p.Args)
				return dsFrom(p.Context).Teams.GetTeams(p.Context, team.Filter{
					IsActive: optBool(f, "isActive"),
					HasTags:  stringList(f, "hasTags"),
				})
			},
		},
	}
}

func teamMutations() graphql.Fields {
	return graphql.Fields{
		"createTeam": &graphql.Field{
			Type: teamType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTeamInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input team.CreateTeamInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Teams.CreateTeam(p.Context, input)
			},
		},
		"updateTeam": &graphql.Field{
			Type: teamType,
			Args: idAnd(graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTeamInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input team.UpdateTeamInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Teams.UpdateTeam(p.Context, stringArg(p.Args, "id"), input)
			},
		},
		"deleteTeam": &graphql.Field{
			Type: teamType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.DeleteTeam(p.Context, stringArg(p.Args, "id"))
			},
		},
		"addCoachToTeam": &graphql.Field{
			Type: teamType,
			Args: graphql.FieldConfigArgument{
				"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.AddCoachToTeam(p.Context, stringArg(p.Args, "teamId"), stringArg(p.Args, "userId"))
			},
		},
		"removeCoachFromTeam": &graphql.Field{
			Type: teamType,
			Args: graphql.FieldConfigArgument{
				"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.RemoveCoachFromTeam(p.Context, stringArg(p.Args, "teamId"), stringArg(p.Args, "userId"))
			},
		},
		"addTagToTeam": &graphql.Field{
			Type: teamType,
			Args: graphql.FieldConfigArgument{
				"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"tagId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.AddTagToTeam(p.Context, stringArg(p.Args, "teamId"), stringArg(p.Args, "tagId"))
			},
		},
		"removeTagFromTeam": &graphql.Field{
			Type: teamType,
			Args: graphql.FieldConfigArgument{
				"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"tagId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Teams.RemoveTagFromTeam(p.Context, stringArg(p.Args, "teamId"), stringArg(p.Args, "tagId"))
			},
		},
	}
}
