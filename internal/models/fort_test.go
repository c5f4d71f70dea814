package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type FortTestSuite struct {
	suite.Suite
	fort *Fort

	memberA Identity
	memberB Identity
}

func (s *FortTestSuite) SetupTest() {
	s.fort = NewFort()
	s.memberA = Identity{ExternalID: "id-a", Handle: "alice"}
	s.memberB = Identity{ExternalID: "id-b", Handle: "bob"}
}

func TestFortTestSuite(t *testing.T) {
	suite.Run(t, new(FortTestSuite))
}

func (s *FortTestSuite) TestMarkAndUnmark() {
	s.Require().NoError(s.fort.Mark(s.memberA))
	s.True(s.fort.IsMarkedToday(s.memberA))
	s.False(s.fort.IsMarkedToday(s.memberB))

	s.ErrorIs(s.fort.Mark(s.memberA), ErrAlreadyMarked)

	s.Require().NoError(s.fort.Unmark(s.memberA))
	s.False(s.fort.IsMarkedToday(s.memberA))
	s.ErrorIs(s.fort.Unmark(s.memberA), ErrNotMarked)
}

func (s *FortTestSuite) TestFoldIntoHistoryIsAdditive() {
	s.fort.History[s.memberA.Key()] = &FortRecord{Identity: s.memberA, Count: 2}
	s.Require().NoError(s.fort.Mark(s.memberA))
	s.Require().NoError(s.fort.Mark(s.memberB))

	s.fort.FoldIntoHistory()

	s.Empty(s.fort.Attendance)
	s.Equal(3, s.fort.History[s.memberA.Key()].Count)
	s.Equal(1, s.fort.History[s.memberB.Key()].Count)
}

func (s *FortTestSuite) TestHistoryFor() {
	_, err := s.fort.HistoryFor(s.memberA)
	s.ErrorIs(err, ErrNoHistory)

	s.Require().NoError(s.fort.Mark(s.memberA))
	s.fort.FoldIntoHistory()

	count, err := s.fort.HistoryFor(s.memberA)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *FortTestSuite) TestCombinedReport() {
	s.fort.History[s.memberA.Key()] = &FortRecord{Identity: s.memberA, Count: 3}
	s.Require().NoError(s.fort.Mark(s.memberA))

	report := s.fort.CombinedReport()
	s.Require().Len(report, 1)
	s.Equal(4, report[s.memberA.Key()].Count)

	// an identity with no history and no mark has no entry, not a zero
	s.NotContains(report, s.memberB.Key())
}

func (s *FortTestSuite) TestCombinedReportMarkOnly() {
	s.Require().NoError(s.fort.Mark(s.memberB))

	report := s.fort.CombinedReport()
	s.Require().Len(report, 1)
	s.Equal(1, report[s.memberB.Key()].Count)
	s.Equal("bob", report[s.memberB.Key()].Identity.Handle)
}
