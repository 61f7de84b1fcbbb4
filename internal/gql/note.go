package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/note"
)

var noteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Note",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"type":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"ref":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"text":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdOn": &graphql.Field{Type: graphql.DateTime},
		"createdBy": &graphql.Field{Type: graphql.ID},
		"updatedOn": &graphql.Field{Type: graphql.DateTime},
	},
})

var createNoteInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateNoteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"type": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"ref":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"text": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

func wireNoteRelations() {
	noteType.AddFieldConfig("creator", &graphql.Field{
		Type: userType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			n := p.Source.(*note.Note)
			if n.CreatedBy == "" {
				return nil, nil
			}
			users, err := dsFrom(p.Context).Users.GetUsersByIDs(p.Context, []string{n.CreatedBy})
			if err != nil || len(users) == 0 {
				return nil, err
			}
			return users[0], nil
		},
	})
}

func noteQueries() graphql.Fields {
	return graphql.Fields{
		"getNotes": &graphql.Field{
			Type: graphql.NewList(noteType),
			Args: graphql.FieldConfigArgument{
				"type": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"ref":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Notes.GetNotes(p.Context, stringArg(p.Args, "type"), stringArg(p.Args, "ref"))
			},
		},
	}
}

func noteMutations() graphql.Fields {
	return graphql.Fields{
		"createNote": &graphql.Field{
			Type: noteType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createNoteInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input note.CreateNoteInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Notes.CreateNote(p.Context, input)
			},
		},
		"updateNoteText": &graphql.Field{
			Type: noteType,
			Args: idAnd(graphql.FieldConfigArgument{
				"text": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Notes.UpdateNoteText(p.Context, stringArg(p.Args, "id"), stringArg(p.Args, "text"))
			},
		},
		"deleteNote": &graphql.Field{
			Type: noteType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Notes.DeleteNote(p.Context, stringArg(p.Args, "id"))
			},
		},
	}
}
