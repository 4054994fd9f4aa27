package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
)

func requiredString(req *structpb.Struct, field string, vb *errors.ValidationBuilder) string {
	value := req.GetFields()[field].GetStringValue()
	if value == "" {
		vb.RequiredField(field)
	}
	return value
}

func optionalString(req *structpb.Struct, field string) string {
	return req.GetFields()[field].GetStringValue()
}

// requiredInt reads a whole number. Struct numbers arrive as float64.
func requiredInt(req *structpb.Struct, field string, vb *errors.ValidationBuilder) int {
	value, ok := req.GetFields()[field]
	if !ok {
		vb.RequiredField(field)
		return 0
	}
	n, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		vb.Field(field, "must be an integer")
		return 0
	}
	return int(n.NumberValue)
}

func requiredIntList(req *structpb.Struct, field string, vb *errors.ValidationBuilder) []int {
	list := req.GetFields()[field].GetListValue()
	if list == nil || len(list.GetValues()) == 0 {
		vb.RequiredField(field)
		return nil
	}
	out := make([]int, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		n, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
			vb.Field(field, "must contain only integers")
			return nil
		}
		out = append(out, int(n.NumberValue))
	}
	return out
}

// toStruct converts a JSON-tagged value into a Struct, keeping the field
// names clients see on the websocket stream.
func toStruct(fields map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	out, err := structpb.NewStruct(decoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return out, nil
}

// battleView drops the type chart, which only the damage resolver needs
func battleView(state *entities.BattleState) *entities.BattleState {
	if state == nil {
		return nil
	}
	view := *state
	view.TypeChart = nil
	return &view
}
