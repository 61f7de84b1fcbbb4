package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/tag"
)

var tagType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tag",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"label": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"color": &graphql.Field{Type: graphql.String},
	},
})

var createTagInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTagInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"label": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"color": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateTagInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTagInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"label": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"color": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

func tagQueries() graphql.Fields {
	return graphql.Fields{
		"getTag": &graphql.Field{
			Type: tagType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Tags.GetTag(p.Context, stringArg(p.Args, "id"))
			},
		},
		"getTags": &graphql.Field{
			Type: graphql.NewList(tagType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Tags.GetTags(p.Context)
			},
		},
	}
}

func tagMutations() graphql.Fields {
	return graphql.Fields{
		"createTag": &graphql.Field{
			Type: tagType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTagInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input tag.CreateTagInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Tags.CreateTag(p.Context, input)
			},
		},
		"updateTag": &graphql.Field{
			Type: tagType,
			Args: idAnd(graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTagInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input tag.UpdateTagInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Tags.UpdateTag(p.Context, stringArg(p.Args, "id"), input)
			},
		},
		"deleteTag": &graphql.Field{
			Type: tagType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Tags.DeleteTag(p.Context, stringArg(p.Args, "id"))
			},
		},
	}
}
