package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gym-battle/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("battle")
	s.Assert().Equal("battle_1", gen.Generate())
	s.Assert().Equal("battle_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Assert().Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestUUID() {
	gen := idgen.NewUUID("battle")
	id := gen.Generate()

	s.Require().True(strings.HasPrefix(id, "battle_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "battle_"))
	s.Assert().NoError(err)
	s.Assert().NotEqual(id, gen.Generate())
}
