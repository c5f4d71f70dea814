package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/wangandai/ascentbot/internal/common/clock/mocks"
	"github.com/wangandai/ascentbot/internal/models"
	guildService "github.com/wangandai/ascentbot/internal/services/guild"
	guildMocks "github.com/wangandai/ascentbot/internal/services/guild/mocks"
	"github.com/wangandai/ascentbot/internal/services/scheduler/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockGuilds   *guildMocks.MockService
	mockNotifier *mocks.MockNotifier
	mockClock    *clockMocks.MockClock
	scheduler    *Scheduler
	ctx          context.Context

	testGuild *models.Guild
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGuilds = guildMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = mocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	sched, err := New(&Config{
		Guilds:   s.mockGuilds,
		Notifier: s.mockNotifier,
		Clock:    s.mockClock,
		Logger:   zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.scheduler = sched

	s.testGuild = models.NewGuild("Test Guild", "channel-1")
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Notifier: s.mockNotifier, Clock: s.mockClock})
	s.Error(err)

	_, err = New(&Config{Guilds: s.mockGuilds, Clock: s.mockClock})
	s.Error(err)

	_, err = New(&Config{Guilds: s.mockGuilds, Notifier: s.mockNotifier})
	s.Error(err)
}

func (s *SchedulerTestSuite) TestReminderPassFiresTwoMinutesAhead() {
	_, err := s.testGuild.CreateExpedition("Raid", "2132", "")
	s.Require().NoError(err)
	_, err = s.testGuild.CreateExpedition("Siege", "0900", "")
	s.Require().NoError(err)

	// 21:30 now, so only the 21:32 expedition is due
	now := time.Date(2025, 4, 19, 21, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(now)
	s.mockGuilds.EXPECT().ListGuilds(s.ctx, &guildService.ListGuildsInput{}).
		Return(&guildService.ListGuildsOutput{Guilds: []*models.Guild{s.testGuild}}, nil)

	raid, err := s.testGuild.Expedition("Raid")
	s.Require().NoError(err)
	s.mockNotifier.EXPECT().SendExpeditionReminder(s.ctx, s.testGuild, raid).Return(nil)

	s.scheduler.ReminderPass(s.ctx)
}

func (s *SchedulerTestSuite) TestReminderPassExactMinuteOnly() {
	_, err := s.testGuild.CreateExpedition("Raid", "2133", "")
	s.Require().NoError(err)

	// 21:30 + 2m lead is 21:32, one minute short of the 21:33 schedule
	now := time.Date(2025, 4, 19, 21, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(now)
	s.mockGuilds.EXPECT().ListGuilds(s.ctx, &guildService.ListGuildsInput{}).
		Return(&guildService.ListGuildsOutput{Guilds: []*models.Guild{s.testGuild}}, nil)

	s.scheduler.ReminderPass(s.ctx)
}

func (s *SchedulerTestSuite) TestResetPassAppliesAtConfiguredHour() {
	s.Require().NoError(s.testGuild.SetDailyResetHour(3))
	other := models.NewGuild("Other", "channel-2")
	s.Require().NoError(other.SetDailyResetHour(5))

	now := time.Date(2025, 4, 19, 3, 0, 30, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(now)
	s.mockGuilds.EXPECT().ListGuilds(s.ctx, &guildService.ListGuildsInput{}).
		Return(&guildService.ListGuildsOutput{Guilds: []*models.Guild{s.testGuild, other}}, nil)

	s.mockGuilds.EXPECT().ApplyDailyReset(s.ctx, &guildService.ApplyDailyResetInput{ChannelID: "channel-1"}).
		Return(&guildService.ApplyDailyResetOutput{Guild: s.testGuild}, nil)
	s.mockNotifier.EXPECT().RefreshPinnedSummary(s.ctx, s.testGuild).Return(nil)

	// registry is saved once per pass, not per guild
	s.mockGuilds.EXPECT().Save(s.ctx).Return(nil)

	s.scheduler.ResetPass(s.ctx)
}

func (s *SchedulerTestSuite) TestResetPassNoMatchingHourSkipsSave() {
	now := time.Date(2025, 4, 19, 7, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(now)
	s.mockGuilds.EXPECT().ListGuilds(s.ctx, &guildService.ListGuildsInput{}).
		Return(&guildService.ListGuildsOutput{Guilds: []*models.Guild{s.testGuild}}, nil)

	s.scheduler.ResetPass(s.ctx)
}
