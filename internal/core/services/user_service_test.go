package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/core/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockGuestRepo *MockGuestRepository
	userSvc       portssvc.UserSvcFacade
	identitySvc   portssvc.IdentitySvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockGuestRepo = new(MockGuestRepository)
	suite.userSvc = services.NewUserService(suite.mockUserRepo)
	suite.identitySvc = services.NewIdentityService(suite.mockUserRepo, suite.mockGuestRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_NewUser() {
	email := "alice@example.com"
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, email).Return(nil, apperrors.ErrNotFound).Once()
	var saved domain.User
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.userSvc.CreateUser(context.Background(), dto.CreateUserRequest{Email: email})

	suite.Require().NoError(err)
	suite.Equal(email, user.Email)
	suite.Len(saved.Token, 32)
	suite.Equal(saved.Token, user.Token)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_ExistingUserKeepsToken() {
	email := "alice@example.com"
	existing := &domain.User{UserID: uuid.NewString(), Email: email, Token: "original-token"}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, email).Return(existing, nil).Once()

	user, err := suite.userSvc.CreateUser(context.Background(), dto.CreateUserRequest{Email: email})

	suite.Require().NoError(err)
	suite.Equal("original-token", user.Token)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestResolveToken_User() {
	user := &domain.User{UserID: uuid.NewString(), Token: "tok"}
	suite.mockUserRepo.On("FindUserByToken", mock.Anything, "tok").Return(user, nil).Once()

	ref, err := suite.identitySvc.ResolveToken(context.Background(), "tok")

	suite.Require().NoError(err)
	suite.Equal(domain.KindUser, ref.Kind)
	suite.Equal(user.UserID, ref.ID)
}

func (suite *UserServiceTestSuite) TestResolveToken_GuestFallback() {
	guest := &domain.Guest{GuestID: uuid.NewString(), Token: "tok"}
	suite.mockUserRepo.On("FindUserByToken", mock.Anything, "tok").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGuestRepo.On("FindGuestByToken", mock.Anything, "tok").Return(guest, nil).Once()

	ref, err := suite.identitySvc.ResolveToken(context.Background(), "tok")

	suite.Require().NoError(err)
	suite.Equal(domain.KindGuest, ref.Kind)
	suite.Equal(guest.GuestID, ref.ID)
}

func (suite *UserServiceTestSuite) TestResolveToken_UnknownForbidden() {
	suite.mockUserRepo.On("FindUserByToken", mock.Anything, "bogus").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGuestRepo.On("FindGuestByToken", mock.Anything, "bogus").Return(nil, apperrors.ErrNotFound).Once()

	ref, err := suite.identitySvc.ResolveToken(context.Background(), "bogus")

	suite.Require().Error(err)
	suite.Nil(ref)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
