package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("region", "is required")
	ve.AddFieldError("tier", "must be between 1 and 8")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal("validation failed: region: is required; tier: must be between 1 and 8", ve.Error())

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.Assert().False(ve.HasErrors())
	s.Assert().Nil(ve.ToError())
	s.Assert().Equal("validation failed", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	s.Run("collects field errors", func() {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("gym_type").
			Fieldf("team", "must contain at most %d pokemon", 3)
		errors.ValidateRange("tier", 9, 1, 8, vb)

		err := vb.Build()
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))

		fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Require().True(ok)
		s.Assert().Equal([]string{"is required"}, fields["gym_type"])
		s.Assert().Equal([]string{"must contain at most 3 pokemon"}, fields["team"])
		s.Assert().Equal([]string{"must be between 1 and 8"}, fields["tier"])
	})

	s.Run("no errors builds nil", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("tier", 4, 1, 8, vb)
		s.Assert().NoError(vb.Build())
	})
}
