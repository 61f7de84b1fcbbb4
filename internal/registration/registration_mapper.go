package registration

// ToRegistration maps the persistence document to its API shape; nil maps
// to nil.
func ToRegistration(r *RegistrationData) *Registration {
	if r == nil {
		return nil
	}
	// registrations that never ordered food carry a zero FoodOrder column;
	// those surface as a nil order, not an empty one
	var foodOrder *FoodOrder
	if r.FoodOrder.ModifiedOn != nil || len(r.FoodOrder.Items) > 0 {
		fo := r.FoodOrder
		foodOrder = &fo
	}
	return &Registration{
		ID:              r.ID,
		TeamID:          r.TeamID,
		EventID:         r.EventID,
		ProgramID:       r.ProgramID,
		CreatedOn:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
		CanceledOn:      r.CanceledOn,
		CanceledBy:      r.CanceledBy,
		ShippedOn:       r.ShippedOn,
		ShipmentGroup:   r.ShipmentGroup,
		InvoiceIssuedOn: r.InvoiceIssuedOn,
		PaidOn:          r.PaidOn,
		TeamSize:        r.TeamSize,
		SizeConfirmedOn: r.SizeConfirmedOn,
		FoodOrder:       foodOrder,
	}
}
