package event

// ToEvent maps the persistence document to its API shape; nil maps to nil.
func ToEvent(e *EventData) *Event {
	if e == nil {
		return nil
	}
	foodTypes := make([]FoodTypeView, len(e.FoodTypes))
	for i, ft := range e.FoodTypes {
		foodTypes[i] = FoodTypeView{
			ID:        ft.ID,
			Name:      ft.Name,
			UnitPrice: ft.UnitPrice.InexactFloat64(),
		}
	}
	return &Event{
		ID:                e.ID,
		Name:              e.Name,
		ProgramID:         e.ProgramID,
		Conditions:        e.Conditions,
		Date:              e.Date,
		RegistrationEnd:   e.RegistrationEnd,
		ManagersIDs:       e.ManagersIDs,
		FoodTypes:         foodTypes,
		FoodOrderDeadline: e.FoodOrderDeadline,
		DeletedOn:         e.DeletedOn,
		DeletedBy:         e.DeletedBy,
	}
}
