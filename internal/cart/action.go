package cart

import (
	"encoding/json"
	"fmt"
)

type actionEnvelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// UnmarshalJSON decodes the wire form {kind, data}: data is the product
// payload for ADD_ITEM, the identity key string for REMOVE_ITEM,
// INCREMENT_ITEM and DECREMENT_ITEM, and absent for CLEAR_CART.
func (a *Action) UnmarshalJSON(b []byte) error {
	var env actionEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	*a = Action{Kind: env.Kind}

	switch env.Kind {
	case AddItem:
		var p AddPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return fmt.Errorf("decode add payload: %w", err)
		}
		a.Add = &p
	case RemoveItem, IncrementItem, DecrementItem:
		if err := json.Unmarshal(env.Data, &a.IdentityKey); err != nil {
			return fmt.Errorf("decode identity key: %w", err)
		}
	case ClearCart:
		// no data
	default:
		return fmt.Errorf("unknown action kind %q", env.Kind)
	}
	return nil
}

func (a Action) MarshalJSON() ([]byte, error) {
	env := actionEnvelope{Kind: a.Kind}

	switch a.Kind {
	case AddItem:
		raw, err := json.Marshal(a.Add)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	case RemoveItem, IncrementItem, DecrementItem:
		raw, err := json.Marshal(a.IdentityKey)
		if err != nil {
			return nil, err
		}
		env.Data = raw
	}
	return json.Marshal(env)
}
