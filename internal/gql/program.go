package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/program"
)

var programType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Program",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"conditions":  &graphql.Field{Type: graphql.String},
		"active":      &graphql.Field{Type: graphql.Boolean},
		"managersIds": &graphql.Field{Type: graphql.NewList(graphql.ID)},
	},
})

var programFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProgramFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isActive": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var createProgramInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProgramInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"conditions":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateProgramInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateProgramInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"conditions":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"active":      &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

func wireProgramRelations() {
	programType.AddFieldConfig("managers", &graphql.Field{
		Type: graphql.NewList(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			prog := p.Source.(*program.Program)
			return dsFrom(p.Context).Users.GetUsersByIDs(p.Context, prog.ManagersIDs)
		},
	})
	programType.AddFieldConfig("events", &graphql.Field{
		Type: graphql.NewList(eventType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			prog := p.Source.(*program.Program)
			return dsFrom(p.Context).Events.GetEventsForProgram(p.Context, prog.ID)
		},
	})
	programType.AddFieldConfig("invoiceItems", &graphql.Field{
		Type: graphql.NewList(invoiceItemType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			prog := p.Source.(*program.Program)
			return dsFrom(p.Context).Invoices.GetProgramInvoiceItems(p.Context, prog.ID)
		},
	})
	programType.AddFieldConfig("registrations", &graphql.Field{
		Type: graphql.NewList(registrationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			prog := p.Source.(*program.Program)
			return dsFrom(p.Context).Registrations.GetProgramRegistrations(p.Context, prog.ID)
		},
	})
}

func programQueries() graphql.Fields {
	return graphql.Fields{
		"getProgram": &graphql.Field{
			Type: programType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Programs.GetProgram(p.Context, stringArg(p.Args, "id"))
			},
		},
		"getPrograms": &graphql.Field{
			Type: graphql.NewList(programType),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: programFilterInputType},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				f := filterArg(p.Args)
				return dsFrom(p.Context).Programs.GetPrograms(p.Context, program.Filter{
					IsActive: optBool(f, "isActive"),
				})
			},
		},
	}
}

func programMutations() graphql.Fields {
	return graphql.Fields{
		"createProgram": &graphql.Field{
			Type: programType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProgramInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input program.CreateProgramInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Programs.CreateProgram(p.Context, input)
			},
		},
		"updateProgram": &graphql.Field{
			Type: programType,
			Args: idAnd(graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateProgramInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input program.UpdateProgramInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Programs.UpdateProgram(p.Context, stringArg(p.Args, "id"), input)
			},
		},
		"deleteProgram": &graphql.Field{
			Type: programType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Programs.DeleteProgram(p.Context, stringArg(p.Args, "id"))
			},
		},
		"addProgramManager": &graphql.Field{
			Type: programType,
			Args: graphql.FieldConfigArgument{
				"programId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Programs.AddProgramManager(p.Context, stringArg(p.Args, "programId"), stringArg(p.Args, "userId"))
			},
		},
		"removeProgramManager": &graphql.Field{
			Type: programType,
			Args: graphql.FieldConfigArgument{
				"programId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Programs.RemoveProgramManager(p.Context, stringArg(p.Args, "programId"), stringArg(p.Args, "userId"))
			},
		},
	}
}
