package domain

// PlacementValidator gates every write before it reaches the store.
// It holds no state; the zero value is ready to use.
type PlacementValidator struct{}

func NewPlacementValidator() PlacementValidator {
	return PlacementValidator{}
}

// Validate checks, in order: actor present, coordinates inside the room,
// color an exact palette member.
func (v PlacementValidator) Validate(room Room, x, y int, color Color, actor Actor) error {
	if err := v.ValidateActor(actor); err != nil {
		return err
	}
	if !room.Contains(x, y) {
		return &ValidationError{Reason: RejectOutOfBounds, X: x, Y: y, Color: color}
	}
	if !room.Palette.Contains(color) {
		return &ValidationError{Reason: RejectInvalidColor, X: x, Y: y, Color: color}
	}
	return nil
}

func (PlacementValidator) ValidateActor(actor Actor) error {
	if actor.IsAnonymous() {
		return &ValidationError{Reason: RejectUnauthorized}
	}
	return nil
}

// ValidateBatch rejects the whole batch on the first invalid placement.
func (v PlacementValidator) ValidateBatch(room Room, placements []Placement, actor Actor) error {
	if err := v.ValidateActor(actor); err != nil {
		return err
	}
	for _, p := range placements {
		if err := v.Validate(room, p.X, p.Y, p.Color, actor); err != nil {
			return err
		}
	}
	return nil
}
