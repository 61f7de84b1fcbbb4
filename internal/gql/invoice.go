package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/teamreg/backend/internal/invoice"
)

var invoiceItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "InvoiceItem",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"programId":  &graphql.Field{Type: graphql.ID},
		"eventId":    &graphql.Field{Type: graphql.ID},
		"lineNumber": &graphql.Field{Type: graphql.Int},
		"text":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"note":       &graphql.Field{Type: graphql.String},
		"unitPrice":  &graphql.Field{Type: graphql.Float},
		"quantity":   &graphql.Field{Type: graphql.Float},
	},
})

var invoiceItemInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "InvoiceItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"lineNumber": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"text":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"note":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"unitPrice":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"quantity":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

func invoiceItemArgs(owner string) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		owner:   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(invoiceItemInputType)},
	}
}

func invoiceMutations() graphql.Fields {
	return graphql.Fields{
		"createProgramInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: invoiceItemArgs("programId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input invoice.ItemInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Invoices.CreateProgramInvoiceItem(p.Context, stringArg(p.Args, "programId"), input)
			},
		},
		"updateProgramInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: idAnd(invoiceItemArgs("programId")),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input invoice.ItemInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Invoices.UpdateProgramInvoiceItem(p.Context, stringArg(p.Args, "programId"), stringArg(p.Args, "id"), input)
			},
		},
		"deleteProgramInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: idAnd(graphql.FieldConfigArgument{
				"programId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Invoices.DeleteProgramInvoiceItem(p.Context, stringArg(p.Args, "programId"), stringArg(p.Args, "id"))
			},
		},
		"createEventInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: invoiceItemArgs("eventId"),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input invoice.ItemInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Invoices.CreateEventInvoiceItem(p.Context, stringArg(p.Args, "eventId"), input)
			},
		},
		"updateEventInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: idAnd(invoiceItemArgs("eventId")),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				var input invoice.ItemInput
				if err := decodeInput(p.Args["input"], &input); err != nil {
					return nil, err
				}
				return dsFrom(p.Context).Invoices.UpdateEventInvoiceItem(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "id"), input)
			},
		},
		"deleteEventInvoiceItem": &graphql.Field{
			Type: invoiceItemType,
			Args: idAnd(graphql.FieldConfigArgument{
				"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			}),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return dsFrom(p.Context).Invoices.DeleteEventInvoiceItem(p.Context, stringArg(p.Args, "eventId"), stringArg(p.Args, "id"))
			},
		},
	}
}
