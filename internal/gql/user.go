package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/user"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"firstName": &graphql.Field{Type: graphql.String},
		"lastName":  &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"isAdmin":   &graphql.Field{Type: graphql.Boolean},
		"createdOn": &graphql.Field{Type: graphql.DateTime},
		"deletedOn": &graphql.Field{Type: graphql.DateTime},
	},
})

var userFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var createUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// wireUserRelations attaches the lazy relation fields. Relations resolve
// through the owning datasource, never through the user's own repo.
func wireUserRelations() {
	userType.AddFieldConfig("coachingTeams", &graphql.Field{
		Type: graphql.NewList(teamType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := p.Source.(*user.User)
			return dsFrom(p.Context).Teams.GetTeamsCoachedBy(p.Context, u.ID)
		},
	})
	userType.AddFieldConfig("managingEvents", &graphql.Field{
		Type: graphql.NewList(eventType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := p.Source.(*user.User)
			return dsFrom(p.Context).Events.GetEventsManagedBy(p.Context, u.ID)
		},
	})
	userType.AddFieldConfig("managingPrograms", &graphql.Field{
		Type: graphql.NewList(programType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			u := p.Source.(*user.User)
			return dsFrom(p.Context).Programs.GetProgramsManagedBy(p.Context, u.ID)
		},
	})
}

func userQueries() graphql.Fields {
	return graphql.Fields{
		"getUser": &graphql.Field{
			Type: userType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Users.GetUser(p.Context, stringArg(p.Args, "id"))
			},
		},
		"getUsers": &graphql.Field{
			Type: graphql.NewList(userType),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: userFilterInputType},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				f := filterArg(p.Args)
				return dsFrom(p.Context).Users.GetUsers(p.Context, user.Filter{
					IsActive: optBool(f, "isActive"),
				})
			},
		},
		"me": &graphql.Field{
			Type: userType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				cu := userFrom(p.Context)
				if cu == nil {
					return nil, nil
				}
				return dsFrom(p.Context).Users.GetUser(p.Context, cu.ID)
			},
		},
	}
}

func userMutations() graphql.Fields {
	return graphql.Fields{
		"createUser": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createUserInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input user.CreateUserInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Users.CreateUser(p.Context, input)
			},
		},
		"updateUser": &graphql.Field{
			Type: userType,
			Args: idAnd(graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input user.UpdateUserInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Users.UpdateUser(p.Context, stringArg(p.Args, "id"), input)
			},
		},
		"deleteUser": &graphql.Field{
			Type: userType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Users.DeleteUser(p.Context, stringArg(p.Args, "id"))
			},
		},
		"changeUserPassword": &graphql.Field{
			Type: userType,
			Args: idAnd(graphql.FieldConfigArgument{
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Users.ChangePassword(p.Context, stringArg(p.Args, "id"), stringArg(p.Args, "password"))
			},
		},
		"setAdmin": &graphql.Field{
			Type: userType,
			Args: idAnd(graphql.FieldConfigArgument{
				"isAdmin": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Users.SetAdmin(p.Context, stringArg(p.Args, "id"), boolArg(p.Args, "isAdmin"))
			},
		},
	}
}
