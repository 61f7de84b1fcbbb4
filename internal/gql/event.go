package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/event"
)

var foodTypeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "FoodType",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"unitPrice": &graphql.Field{Type: graphql.Float},
	},
})

var eventType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Event",
	Fields: graphql.Fields{
		"id":                &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":              &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"programId":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"conditions":        &graphql.Field{Type: graphql.String},
		"date":              &graphql.Field{Type: graphql.DateTime},
		"registrationEnd":   &graphql.Field{Type: graphql.DateTime},
		"managersIds":       &graphql.Field{Type: graphql.NewList(graphql.ID)},
		"foodTypes":         &graphql.Field{Type: graphql.NewList(foodTypeType)},
		"foodOrderDeadline": &graphql.Field{Type: graphql.DateTime},
		"deletedOn":         &graphql.Field{Type: graphql.DateTime},
	},
})

var eventFilterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EventFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"isActive":  &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		"programId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

var createEventInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateEventInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":              &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"programId":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"conditions":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"date":              &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"registrationEnd":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"foodOrderDeadline": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var updateEventInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateEventInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":              &graphql.InputObjectFieldConfig{Type: graphql.String},
		"conditions":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"date":              &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"registrationEnd":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"foodOrderDeadline": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

var foodTypeInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FoodTypeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"unitPrice": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

func wireEventRelations() {
	eventType.AddFieldConfig("program", &graphql.Field{
		Type: programType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e := p.Source.(*event.Event)
			return dsFrom(p.Context).Programs.GetProgramOrNil(p.Context, e.ProgramID)
		},
	})
	eventType.AddFieldConfig("managers", &graphql.Field{
		Type: graphql.NewList(userType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e := p.Source.(*event.Event)
			return dsFrom(p.Context).Users.GetUsersByIDs(p.Context, e.ManagersIDs)
		},
	})
	eventType.AddFieldConfig("invoiceItems", &graphql.Field{
		Type: graphql.NewList(invoiceItemType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e := p.Source.(*event.Event)
			return dsFrom(p.Context).Invoices.GetEventInvoiceItems(p.Context, e.ID)
		},
	})
	eventType.AddFieldConfig("registrations", &graphql.Field{
		Type: graphql.NewList(registrationType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e := p.Source.(*event.Event)
			return dsFrom(p.Context).Registrations.GetEventRegistrations(p.Context, e.ID)
		},
	})
	eventType.AddFieldConfig("registrationsCount", &graphql.Field{
		Type: graphql.Int,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			e := p.Source.(*event.Event)
			return dsFrom(p.Context).Registrations.GetEventRegistrationsCount(p.Context, e.ID)
		},
	})
}

func eventQueries() graphql.Fields {
	return graphql.Fields{
		"getEvent": &graphql.Field{
			Type: eventType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.GetEvent(p.Context, stringArg(p.Args, "id"))
			},
		},
		"getEvents": &graphql.Field{
			Type: graphql.NewList(eventType),
			Args: graphql.FieldConfigArgument{
				"filter": &graphql.ArgumentConfig{Type: eventFilterInputType},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				f := filterArg(p.Args)
				return dsFrom(p.Context).Events.GetEvents(p.Context, event.Filter{
					IsActive:  optBool(f, "isActive"),
					ProgramID: optString(f, "programId"),
				})
			},
		},
	}
}

func eventMutations() graphql.Fields {
	return graphql.Fields{
		"createEvent": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createEventInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input event.CreateEventInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Events.CreateEvent(p.Context, input)
			},
		},
		"updateEvent": &graphql.Field{
			Type: eventType,
			Args: idAnd(graphql.FieldConfigArgument{
				"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateEventInputType)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input event.UpdateEventInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Events.UpdateEvent(p.Context, stringArg(p.Args, "id"), input)
			},
		},
		"deleteEvent": &graphql.Field{
			Type: eventType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.DeleteEvent(p.Context, stringArg(p.Args, "id"))
			},
		},
		"undeleteEvent": &graphql.Field{
			Type: eventType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.UndeleteEvent(p.Context, stringArg(p.Args, "id"))
			},
		},
		"addEventManager": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.AddEventManager(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "userId"))
			},
		},
		"removeEventManager": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"userId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.RemoveEventManager(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "userId"))
			},
		},
		"addEventFoodType": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"input":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(foodTypeInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input event.FoodTypeInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Events.AddEventFoodType(p.Context, stringArg(p.Args, "eventId"), input)
			},
		},
		"updateEventFoodType": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"eventId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"foodTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"input":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(foodTypeInputType)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input event.FoodTypeInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Events.UpdateEventFoodType(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "foodTypeId"), input)
			},
		},
		"removeEventFoodType": &graphql.Field{
			Type: eventType,
			Args: graphql.FieldConfigArgument{
				"eventId":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"foodTypeId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Events.RemoveEventFoodType(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "foodTypeId"))
			},
		},
	}
}
