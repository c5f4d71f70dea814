package guild

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/wangandai/ascentbot/internal/models"
	"github.com/wangandai/ascentbot/internal/repositories/storage"
	storageMocks "github.com/wangandai/ascentbot/internal/repositories/storage/mocks"
)

type GuildServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockStorage *storageMocks.MockRepository
	service     Service
	ctx         context.Context

	testChannelID string
	memberA       models.Identity
	memberB       models.Identity
}

func (s *GuildServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStorage = storageMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Storage:     s.mockStorage,
		RegistryKey: "guilds.test.json",
		Logger:      zerolog.Nop(),
	})
	s.Require().NoError(err)
	s.service = svc

	s.testChannelID = "channel-1"
	s.memberA = models.Identity{ExternalID: "id-a", Handle: "alice"}
	s.memberB = models.Identity{ExternalID: "id-b", Handle: "bob"}
}

func (s *GuildServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GuildServiceTestSuite))
}

// expectSave allows n registry saves
func (s *GuildServiceTestSuite) expectSave(n int) {
	s.mockStorage.EXPECT().Save(s.ctx, gomock.Any()).Return(nil).Times(n)
}

// initGuild seeds an active guild through the service
func (s *GuildServiceTestSuite) initGuild() *models.Guild {
	s.expectSave(1)
	output, err := s.service.InitGuild(s.ctx, &InitGuildInput{
		ChannelID: s.testChannelID,
		Title:     "Test Guild",
	})
	s.Require().NoError(err)
	return output.Guild
}

func (s *GuildServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{RegistryKey: "k"})
	s.Error(err)

	_, err = New(&Config{Storage: s.mockStorage})
	s.Error(err)
}

func (s *GuildServiceTestSuite) TestInitGuild() {
	g := s.initGuild()
	s.Equal("Test Guild", g.Title)
	s.Equal(s.testChannelID, g.ChannelID)
	s.True(g.Active)
	s.Equal(models.DefaultDailyResetHour, g.DailyResetHour)
}

func (s *GuildServiceTestSuite) TestInitGuildTwiceFails() {
	s.initGuild()

	_, err := s.service.InitGuild(s.ctx, &InitGuildInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGuildAlreadyActive)
}

func (s *GuildServiceTestSuite) TestStopAndReactivate() {
	s.initGuild()

	s.expectSave(1)
	_, err := s.service.StopGuild(s.ctx, &StopGuildInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	// stopped guilds do not resolve by default
	_, err = s.service.GetGuild(s.ctx, &GetGuildInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrGuildNotFound)

	// but do with IncludeInactive
	output, err := s.service.GetGuild(s.ctx, &GetGuildInput{ChannelID: s.testChannelID, IncludeInactive: true})
	s.Require().NoError(err)
	s.False(output.Guild.Active)

	// re-init reactivates, keeping state
	s.expectSave(1)
	initOutput, err := s.service.InitGuild(s.ctx, &InitGuildInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.True(initOutput.Reactivated)
	s.True(initOutput.Guild.Active)
	s.Equal("Test Guild", initOutput.Guild.Title)
}

func (s *GuildServiceTestSuite) TestGetGuildUnknownChannel() {
	_, err := s.service.GetGuild(s.ctx, &GetGuildInput{ChannelID: "nope"})
	s.ErrorIs(err, ErrGuildNotFound)
}

func (s *GuildServiceTestSuite) TestCreateExpeditionPersists() {
	s.initGuild()

	s.expectSave(1)
	output, err := s.service.CreateExpedition(s.ctx, &CreateExpeditionInput{
		ChannelID:   s.testChannelID,
		Title:       "Raid",
		Time:        "2130",
		Description: "bring potions",
	})
	s.Require().NoError(err)
	s.Equal("Raid", output.Expedition.Title)
}

func (s *GuildServiceTestSuite) TestCreateExpeditionDomainErrorDoesNotPersist() {
	s.initGuild()

	// no Save expected for the failed create
	_, err := s.service.CreateExpedition(s.ctx, &CreateExpeditionInput{
		ChannelID: s.testChannelID,
		Title:     "Raid",
		Time:      "9pm",
	})
	s.ErrorIs(err, models.ErrInvalidTime)
}

func (s *GuildServiceTestSuite) TestMutationKeptWhenSaveFails() {
	s.initGuild()

	s.mockStorage.EXPECT().Save(s.ctx, gomock.Any()).Return(errors.New("store down"))
	_, err := s.service.CreateExpedition(s.ctx, &CreateExpeditionInput{
		ChannelID: s.testChannelID,
		Title:     "Raid",
		Time:      "2130",
	})
	s.Error(err)

	// the expedition is still there in memory
	output, getErr := s.service.GetGuild(s.ctx, &GetGuildInput{ChannelID: s.testChannelID})
	s.Require().NoError(getErr)
	_, expErr := output.Guild.Expedition("raid")
	s.NoError(expErr)
}

func (s *GuildServiceTestSuite) TestCheckInAndToggles() {
	s.initGuild()
	s.expectSave(1)
	_, err := s.service.CreateExpedition(s.ctx, &CreateExpeditionInput{
		ChannelID: s.testChannelID, Title: "Raid", Time: "2130",
	})
	s.Require().NoError(err)

	s.expectSave(1)
	checkIn, err := s.service.CheckIn(s.ctx, &CheckInInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberA,
	})
	s.Require().NoError(err)
	s.True(checkIn.Expedition.HasMember(s.memberA))

	_, err = s.service.CheckIn(s.ctx, &CheckInInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberA,
	})
	s.ErrorIs(err, models.ErrAlreadyCheckedIn)

	s.expectSave(1)
	checkOut, err := s.service.CheckOut(s.ctx, &CheckOutInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberA,
	})
	s.Require().NoError(err)
	s.False(checkOut.Expedition.HasMember(s.memberA))

	s.expectSave(2)
	daily, err := s.service.ToggleDaily(s.ctx, &ToggleDailyInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberB,
	})
	s.Require().NoError(err)
	s.True(daily.Added)

	ready, err := s.service.ToggleReady(s.ctx, &ToggleReadyInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberB,
	})
	s.Require().NoError(err)
	s.True(ready.Added)
}

func (s *GuildServiceTestSuite) TestFortFlow() {
	s.initGuild()

	s.expectSave(1)
	_, err := s.service.MarkFort(s.ctx, &MarkFortInput{ChannelID: s.testChannelID, Identity: s.memberA})
	s.Require().NoError(err)

	_, err = s.service.MarkFort(s.ctx, &MarkFortInput{ChannelID: s.testChannelID, Identity: s.memberA})
	s.ErrorIs(err, models.ErrAlreadyMarked)

	status, err := s.service.FortStatus(s.ctx, &FortStatusInput{ChannelID: s.testChannelID, Identity: s.memberA})
	s.Require().NoError(err)
	s.True(status.MarkedToday)
	s.Equal(0, status.History)

	_, err = s.service.FortStatus(s.ctx, &FortStatusInput{ChannelID: s.testChannelID, Identity: s.memberB})
	s.ErrorIs(err, models.ErrNoHistory)

	// fold via daily reset, then the count moves into history
	_, err = s.service.ApplyDailyReset(s.ctx, &ApplyDailyResetInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	status, err = s.service.FortStatus(s.ctx, &FortStatusInput{ChannelID: s.testChannelID, Identity: s.memberA})
	s.Require().NoError(err)
	s.False(status.MarkedToday)
	s.Equal(1, status.History)

	report, err := s.service.FortReport(s.ctx, &FortReportInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Require().Len(report.Records, 1)
	s.Equal(1, report.Records[s.memberA.Key()].Count)

	s.expectSave(1)
	_, err = s.service.ResetFort(s.ctx, &ResetFortInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	report, err = s.service.FortReport(s.ctx, &FortReportInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Empty(report.Records)
}

func (s *GuildServiceTestSuite) TestApplyDailyResetDoesNotSave() {
	s.initGuild()
	s.expectSave(2)
	_, err := s.service.CreateExpedition(s.ctx, &CreateExpeditionInput{
		ChannelID: s.testChannelID, Title: "Raid", Time: "0300",
	})
	s.Require().NoError(err)
	_, err = s.service.ToggleDaily(s.ctx, &ToggleDailyInput{
		ChannelID: s.testChannelID, Title: "Raid", Identity: s.memberA,
	})
	s.Require().NoError(err)

	// no Save expectation here: ApplyDailyReset leaves persistence to the caller
	output, err := s.service.ApplyDailyReset(s.ctx, &ApplyDailyResetInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	e, err := output.Guild.Expedition("Raid")
	s.Require().NoError(err)
	s.Require().Len(e.Members, 1)
	s.True(e.Members[0].Equal(s.memberA))
	s.Empty(e.Ready)
}

func (s *GuildServiceTestSuite) TestListGuildsSkipsStopped() {
	s.initGuild()

	s.expectSave(2)
	_, err := s.service.InitGuild(s.ctx, &InitGuildInput{ChannelID: "channel-2", Title: "Other"})
	s.Require().NoError(err)
	_, err = s.service.StopGuild(s.ctx, &StopGuildInput{ChannelID: "channel-2"})
	s.Require().NoError(err)

	output, err := s.service.ListGuilds(s.ctx, &ListGuildsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Guilds, 1)
	s.Equal(s.testChannelID, output.Guilds[0].ChannelID)

	output, err = s.service.ListGuilds(s.ctx, &ListGuildsInput{IncludeInactive: true})
	s.Require().NoError(err)
	s.Len(output.Guilds, 2)
}

func (s *GuildServiceTestSuite) TestLoadMissingBlobStartsEmpty() {
	s.mockStorage.EXPECT().Load(s.ctx, &storage.LoadInput{Key: "guilds.test.json"}).
		Return(&storage.LoadOutput{Found: false}, nil)

	s.Require().NoError(s.service.Load(s.ctx))

	output, err := s.service.ListGuilds(s.ctx, &ListGuildsInput{IncludeInactive: true})
	s.Require().NoError(err)
	s.Empty(output.Guilds)
}
