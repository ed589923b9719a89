package sheet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	mocksheet "github.com/KirkDiggler/character-validator/internal/domain/sheet/mock"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/fixtures"
	"github.com/KirkDiggler/character-validator/internal/repositories/characters"
	mockcharacters "github.com/KirkDiggler/character-validator/internal/repositories/characters/mock"
	"github.com/KirkDiggler/character-validator/internal/resolvers"
	"github.com/KirkDiggler/character-validator/internal/services/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	mockCtrl       *gomock.Controller
	mockRepository *mockcharacters.MockRepository
	service        sheet.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepository = mockcharacters.NewMockRepository(s.mockCtrl)
	s.service = sheet.NewService(&sheet.ServiceConfig{
		Repository: s.mockRepository,
		Resolver:   resolvers.NewEcho(),
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestDeriveSheet() {
	result, err := s.service.DeriveSheet(s.ctx, fixtures.ElfFighter())
	s.Require().NoError(err)

	s.Equal(16, result.ArmorClass)
	s.Equal(1, result.Level)
	s.Require().Len(result.Proficiencies, 1)
	s.Equal("perception", result.Proficiencies[0].ID)

	_, err = s.service.DeriveSheet(s.ctx, nil)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestDeriveSheetByID() {
	s.mockRepository.EXPECT().Get(s.ctx, "multiclass-test").Return(fixtures.MulticlassCharacter(), nil)

	result, err := s.service.DeriveSheetByID(s.ctx, "multiclass-test")
	s.Require().NoError(err)
	s.Equal(3, result.Level)
}

func (s *ServiceTestSuite) TestDeriveSheetByID_NotFound() {
	s.mockRepository.EXPECT().Get(s.ctx, "missing").
		Return(nil, dnderr.NotFoundf("character with ID 'missing' not found"))

	_, err := s.service.DeriveSheetByID(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
	s.Equal("missing", dnderr.GetMeta(err)["character_id"])

	_, err = s.service.DeriveSheetByID(s.ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestDeriveSheets() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "uuid-lmao-lol").Return(fixtures.ElfFighter(), nil)
	s.mockRepository.EXPECT().Get(gomock.Any(), "multiclass-test").Return(fixtures.MulticlassCharacter(), nil)

	result, err := s.service.DeriveSheets(s.ctx, []string{"uuid-lmao-lol", "multiclass-test"})
	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal(1, result[0].Level)
	s.Equal(3, result[1].Level)
}

func (s *ServiceTestSuite) TestDeriveSheets_FailureAbortsAll() {
	s.mockRepository.EXPECT().Get(gomock.Any(), "uuid-lmao-lol").Return(fixtures.ElfFighter(), nil).AnyTimes()
	s.mockRepository.EXPECT().Get(gomock.Any(), "broken").Return(nil, errors.New("redis error"))

	result, err := s.service.DeriveSheets(s.ctx, []string{"uuid-lmao-lol", "broken"})
	s.Nil(result)
	s.Error(err)
}

func (s *ServiceTestSuite) TestDeriveSheets_Empty() {
	result, err := s.service.DeriveSheets(s.ctx, nil)
	s.NoError(err)
	s.Empty(result)
}

func (s *ServiceTestSuite) TestImportCharacter() {
	character := fixtures.ElfFighter()
	s.mockRepository.EXPECT().Create(s.ctx, character).Return(nil)

	result, err := s.service.ImportCharacter(s.ctx, character)
	s.Require().NoError(err)
	s.Same(character, result)

	s.mockRepository.EXPECT().Create(s.ctx, character).
		Return(dnderr.AlreadyExistsf("character with ID 'uuid-lmao-lol' already exists"))

	_, err = s.service.ImportCharacter(s.ctx, character)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *ServiceTestSuite) TestResolverFailureSurfaces() {
	ctrl := gomock.NewController(s.T())
	resolver := mocksheet.NewMockAssetResolver(ctrl)
	resolver.EXPECT().FetchAssetDefinition(s.ctx, assets.AssetTypeProficiency, "perception").
		Return(nil, errors.New("timeout"))

	svc := sheet.NewService(&sheet.ServiceConfig{
		Repository: s.mockRepository,
		Resolver:   resolver,
	})

	_, err := svc.DeriveSheet(s.ctx, fixtures.ElfFighter())
	s.True(dnderr.IsDerivation(err))
	s.True(dnderr.IsAssetResolution(err))
}

func TestNewService_PanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { sheet.NewService(nil) })
	assert.Panics(t, func() { sheet.NewService(&sheet.ServiceConfig{Resolver: resolvers.NewEcho()}) })
	assert.Panics(t, func() {
		sheet.NewService(&sheet.ServiceConfig{Repository: characters.NewInMemoryRepository()})
	})
}
