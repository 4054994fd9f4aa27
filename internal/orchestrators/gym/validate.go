package gym

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/errors"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateConfig checks the struct tags of the gym configuration and reports
// every failing field
func (o *orchestrator) validateConfig(cfg entities.GymConfig) error {
	err := o.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate gym configuration")
	}

	vb := errors.NewValidationBuilder()
	for _, fe := range fieldErrs {
		vb.Field(fe.Field(), translateFieldError(fe))
	}
	return vb.Build()
}

func translateFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + fe.Param()
	case "lowercase":
		return "must be lowercase"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// validateTeam checks the player's picks against the tier's team size and
// the region's species range
func validateTeam(cfg entities.GymConfig, ids []int) error {
	vb := errors.NewValidationBuilder()

	size := cfg.TeamSize()
	switch {
	case len(ids) == 0:
		vb.RequiredField("player_species_ids")
	case len(ids) > size:
		vb.Fieldf("player_species_ids", "tier %d allows at most %d Pokémon, got %d", cfg.Tier, size, len(ids))
	}

	limit := cfg.SpeciesLimit()
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id < 1 || id > limit {
			vb.Fieldf("player_species_ids", "species %d is outside %s (1-%d)", id, cfg.Region, limit)
		}
		if seen[id] {
			vb.Fieldf("player_species_ids", "species %d is selected more than once", id)
		}
		seen[id] = true
	}

	return vb.Build()
}
