package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/wangandai/ascentbot/internal/models"
)

type RenderTestSuite struct {
	suite.Suite
}

func TestRenderTestSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}

func (s *RenderTestSuite) expedition(title, hhmm string) *models.Expedition {
	e, err := models.NewExpedition(title, hhmm, "")
	s.Require().NoError(err)
	return e
}

func (s *RenderTestSuite) at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func (s *RenderTestSuite) TestHumanTime() {
	s.Equal("7pm", renderHumanTime(s.at(19, 0)))
	s.Equal("7.30pm", renderHumanTime(s.at(19, 30)))
	s.Equal("12pm", renderHumanTime(s.at(12, 0)))
	s.Equal("12.05am", renderHumanTime(s.at(0, 5)))
	s.Equal("9am", renderHumanTime(s.at(9, 0)))
}

func (s *RenderTestSuite) TestSortExpeditionsShiftsByResetHour() {
	// With a 3am reset, 1am belongs to the end of the guild day, not the start
	early := s.expedition("early", "0100")
	morning := s.expedition("morning", "0900")
	night := s.expedition("night", "2100")

	sorted := sortExpeditions([]*models.Expedition{early, morning, night}, 3)

	s.Equal([]string{"morning", "night", "early"}, []string{
		sorted[0].Title, sorted[1].Title, sorted[2].Title,
	})
}

func (s *RenderTestSuite) TestFilterKeepsEverythingJustAfterReset() {
	past := s.expedition("past", "0400")
	expeditions := []*models.Expedition{past}

	// 4am reset, 5am now: within the two-hour grace window
	kept := filterExpeditions(expeditions, 4, s.at(5, 0))
	s.Len(kept, 1)
}

func (s *RenderTestSuite) TestFilterDropsLongPastExpeditions() {
	morning := s.expedition("morning", "0900")
	evening := s.expedition("evening", "2100")
	expeditions := []*models.Expedition{morning, evening}

	kept := filterExpeditions(expeditions, 3, s.at(15, 0))

	s.Require().Len(kept, 1)
	s.Equal("evening", kept[0].Title)
}

func (s *RenderTestSuite) TestFilterKeepsRecentlyStarted() {
	recent := s.expedition("recent", "1400")

	kept := filterExpeditions([]*models.Expedition{recent}, 3, s.at(15, 0))
	s.Len(kept, 1)
}

func (s *RenderTestSuite) TestRenderExpeditionListsMembers() {
	e := s.expedition("alpha", "2130")
	e.Members = []models.Identity{
		{ExternalID: "1", Handle: "alice"},
		{ExternalID: "2", Handle: "bob", Label: "bobalt"},
	}

	out := renderExpedition(e)

	s.Contains(out, "alpha")
	s.Contains(out, "9.30pm")
	s.Contains(out, "1. alice")
	s.Contains(out, "2. bob bobalt")
}

func (s *RenderTestSuite) TestRenderFortReportSortsByCountDescending() {
	alice := models.Identity{ExternalID: "1", Handle: "alice"}
	bob := models.Identity{ExternalID: "2", Handle: "bob"}
	records := map[string]*models.FortRecord{
		alice.Key(): {Identity: alice, Count: 2},
		bob.Key():   {Identity: bob, Count: 5},
	}

	out := renderFortReport(records)

	s.Contains(out, "1. bob — 5")
	s.Contains(out, "2. alice — 2")
}

func (s *RenderTestSuite) TestRenderFortReportEmpty() {
	s.Equal("No fort attendance recorded", renderFortReport(nil))
}

func (s *RenderTestSuite) TestSummaryComponentsCapRows() {
	g := models.NewGuild("guild", "chan")
	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := g.CreateExpedition(title, "2100", "")
		s.Require().NoError(err)
	}

	rows := summaryComponents(g, s.at(20, 0))

	// Four expedition rows plus the fort row
	s.Len(rows, 5)
}
