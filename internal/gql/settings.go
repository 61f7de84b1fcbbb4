package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/settings"
)

var settingsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Settings",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"sysEmail":         &graphql.Field{Type: graphql.String},
		"privacyPolicyUrl": &graphql.Field{Type: graphql.String},
		"termsOfUseUrl":    &graphql.Field{Type: graphql.String},
	},
})

var updateSettingsInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateSettingsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"sysEmail":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"privacyPolicyUrl": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"termsOfUseUrl":    &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func settingsQueries() graphql.Fields {
	return graphql.Fields{
		"getSettings": &graphql.Field{
			Type: settingsType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Settings.GetSettings(p.Context)
			},
		},
	}
}

func settingsMutations() graphql.Fields {
	return graphql.Fields{
		"updateSettings": &graphql.Field{
			Type: settingsType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateSettingsInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input settings.UpdateSettingsInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Settings.UpdateSettings(p.Context, input)
			},
		},
	}
}
