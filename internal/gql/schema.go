package gql

import (
	"sync"

	"github.com/graphql-go/graphql"
)

var wireOnce sync.Once

// NewSchema assembles the query and mutation roots. Relation fields are
// wired lazily once so that the mutually referencing object types can be
// declared as plain package vars.
func NewSchema() (graphql.Schema, error) {
	wireOnce.Do(func() {
		wireUserRelations()
		wireTeamRelations()
		wireProgramRelations()
		wireEventRelations()
		wireRegistrationRelations()
		wireNoteRelations()
	})

	queryFields := graphql.Fields{}
	mutationFields := graphql.Fields{}
	for _, fields := range []graphql.Fields{
		userQueries(), tagQueries(), teamQueries(), programQueries(),
		eventQueries(), registrationQueries(), noteQueries(), settingsQueries(),
	} {
		for name, f := range fields {
			queryFields[name] = f
		}
	}
	for _, fields := range []graphql.Fields{
		userMutations(), tagMutations(), teamMutations(), programMutations(),
		eventMutations(), invoiceMutations(), registrationMutations(),
		noteMutations(), settingsMutations(),
	} {
		for name, f := range fields {
			mutationFields[name] = f
		}
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields}),
	})
}
