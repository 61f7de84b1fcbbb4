package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/registration"
)

var foodOrderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FoodOrderItem",
	Fields: graphql.Fields{
		"foodTypeId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var foodOrderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FoodOrder",
	Fields: graphql.Fields{
		"note":       &graphql.Field{Type: graphql.String},
		"items":      &graphql.Field{Type: graphql.NewList(foodOrderItemType)},
		"modifiedOn": &graphql.Field{Type: graphql.DateTime},
	},
})

var registrationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Registration",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"teamId":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"eventId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"programId":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"createdOn":       &graphql.Field{Type: graphql.DateTime},
		"createdBy":       &graphql.Field{Type: graphql.ID},
		"canceledOn":      &graphql.Field{Type: graphql.DateTime},
		"canceledBy":      &graphql.Field{Type: graphql.ID},
		"shippedOn":       &graphql.Field{Type: graphql.DateTime},
		"shipmentGroup":   &graphql.Field{Type: graphql.String},
		"invoiceIssuedOn": &graphql.Field{Type: graphql.DateTime},
		"paidOn":          &graphql.Field{Type: graphql.DateTime},
		"teamSize":        &graphql.Field{Type: graphql.Int},
		"sizeConfirmedOn": &graphql.Field{Type: graphql.DateTime},
		"foodOrder":       &graphql.Field{Type: foodOrderType},
	},
})

var foodOrderItemInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FoodOrderItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"foodTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var foodOrderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FoodOrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"note":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"items": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(foodOrderItemInputType))},
	},
})

func wireRegistrationRelations() {
	registrationType.AddFieldConfig("team", &graphql.Field{
		Type: teamType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			r := p.Source.(*registration.Registration)
			return dsFrom(p.Context).Teams.GetTeamOrNil(p.Context, r.TeamID)
		},
	})
	registrationType.AddFieldConfig("event", &graphql.Field{
		Type: eventType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			r := p.Source.(*registration.Registration)
			return dsFrom(p.Context).Events.GetEventOrNil(p.Context, r.EventID)
		},
	})
	registrationType.AddFieldConfig("program", &graphql.Field{
		Type: programType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			r := p.Source.(*registration.Registration)
			return dsFrom(p.Context).Programs.GetProgramOrNil(p.Context, r.ProgramID)
		},
	})
}

func registrationQueries() graphql.Fields {
	return graphql.Fields{
		"getRegistration": &graphql.Field{
			Type: registrationType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.GetRegistration(p.Context, stringArg(p.Args, "id"))
			},
		},
	}
}

func registrationMutations() graphql.Fields {
	return graphql.Fields{
		"registerTeamForEvent": &graphql.Field{
			Type: registrationType,
			Args: graphql.FieldConfigArgument{
				"teamId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.RegisterTeamForEvent(p.Context, stringArg(p.Args, "teamId"), stringArg(p.Args, "eventId"))
			},
		},
		"cancelEventRegistration": &graphql.Field{
			Type: registrationType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.CancelRegistration(p.Context, stringArg(p.Args, "id"))
			},
		},
		"switchTeamEvent": &graphql.Field{
			Type: registrationType,
			Args: graphql.FieldConfigArgument{
				"registrationId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"eventId":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.SwitchTeamEvent(p.Context, stringArg(p.Args, "registrationId"), stringArg(p.Args, "eventId"))
			},
		},
		"setRegistrationShipmentGroup": &graphql.Field{
			Type: registrationType,
			Args: idAnd(graphql.FieldConfigArgument{
				"group": &graphql.ArgumentConfig{Type: graphql.String},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.SetShipmentGroup(p.Context, stringArg(p.Args, "id"), stringArg(p.Args, "group"))
			},
		},
		"setRegistrationInvoiced": &graphql.Field{
			Type: registrationType,
			Args: idAnd(graphql.FieldConfigArgument{
				"invoiced": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.SetInvoiced(p.Context, stringArg(p.Args, "id"), boolArg(p.Args, "invoiced"))
			},
		},
		"setRegistrationPaid": &graphql.Field{
			Type: registrationType,
			Args: idAnd(graphql.FieldConfigArgument{
				"paid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Boolean)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.SetPaid(p.Context, stringArg(p.Args, "id"), boolArg(p.Args, "paid"))
			},
		},
		"confirmRegistrationTeamSize": &graphql.Field{
			Type: registrationType,
			Args: idAnd(graphql.FieldConfigArgument{
				"size": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Registrations.ConfirmTeamSize(p.Context, stringArg(p.Args, "id"), intArg(p.Args, "size"))
			},
		},
		"updateRegistrationFoodOrder": &graphql.Field{
			Type: registrationType,
			Args: idAnd(graphql.FieldConfigArgument{
				"order": &graphql.ArgumentConfig{Type: graphql.NewNonNull(foodOrderInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input registration.FoodOrderInput
				if err := decodeInput(p.Args["order"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Registrations.UpdateFoodOrder(p.Context, stringArg(p.Args, "id"), input)
			},
		},
	}
}
