package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gathr-app/gathr_backend/internal/apperrors"
	"github.com/gathr-app/gathr_backend/internal/core/domain"
	portssvc "github.com/gathr-app/gathr_backend/internal/core/ports/services"
	"github.com/gathr-app/gathr_backend/internal/core/services"
	"github.com/gathr-app/gathr_backend/internal/dto"
)

type DiscussionServiceTestSuite struct {
	suite.Suite
	mockEventRepo      *MockEventRepository
	mockInvitationRepo *MockInvitationRepository
	mockDiscussionRepo *MockDiscussionRepository
	mockSink           *MockNotificationSink
	service            portssvc.DiscussionSvcFacade

	event  *domain.Event
	author domain.ParticipantRef
}

func (suite *DiscussionServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockInvitationRepo = new(MockInvitationRepository)
	suite.mockDiscussionRepo = new(MockDiscussionRepository)
	suite.mockSink = new(MockNotificationSink)
	suite.service = services.NewDiscussionService(
		suite.mockEventRepo,
		suite.mockInvitationRepo,
		suite.mockDiscussionRepo,
		suite.mockSink,
	)

	suite.event = &domain.Event{
		EventID:       uuid.NewString(),
		Title:         "Game night",
		OrganizerName: "Alice",
		CreatorUserID: uuid.NewString(),
	}
	suite.author = domain.ParticipantRef{Kind: domain.KindUser, ID: suite.event.CreatorUserID}
}

func (suite *DiscussionServiceTestSuite) TestCreatePost_PublishesNotification() {
	req := dto.CreatePostRequest{Topic: "Who brings the board games?"}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockDiscussionRepo.On("SavePost", mock.Anything, mock.MatchedBy(func(p domain.Post) bool {
		return p.EventID == suite.event.EventID && p.Topic == req.Topic && p.Author == suite.author
	})).Return(nil).Once()
	suite.mockInvitationRepo.On("ListInvitationsByEvent", mock.Anything, suite.event.EventID).
		Return([]domain.Invitation{}, nil).Once()
	suite.mockSink.On("Publish", mock.Anything, suite.event.EventID, mock.MatchedBy(func(n portssvc.Notification) bool {
		return n.Type == "post.created"
	})).Return().Once()

	post, err := suite.service.CreatePost(context.Background(), suite.event.EventID, suite.author, req)

	suite.Require().NoError(err)
	suite.Equal("Alice", post.AuthorName)
	suite.mockSink.AssertExpectations(suite.T())
}

func (suite *DiscussionServiceTestSuite) TestCreateComment_CrossEventPostRejected() {
	post := &domain.Post{PostID: uuid.NewString(), EventID: uuid.NewString(), Topic: "Other event"}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockDiscussionRepo.On("FindPostByID", mock.Anything, post.PostID).Return(post, nil).Once()

	comment, err := suite.service.CreateComment(context.Background(), suite.event.EventID, post.PostID, suite.author, dto.CreateCommentRequest{Message: "hi"})

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDiscussionRepo.AssertNotCalled(suite.T(), "SaveComment", mock.Anything, mock.Anything)
	suite.mockSink.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DiscussionServiceTestSuite) TestGetPostThread_ResolvesAuthorNames() {
	guestID := uuid.NewString()
	guestRef := domain.ParticipantRef{Kind: domain.KindGuest, ID: guestID}
	post := &domain.Post{
		PostID:    uuid.NewString(),
		EventID:   suite.event.EventID,
		Topic:     "Carpooling",
		Author:    suite.author,
		CreatedAt: time.Now().UTC(),
	}
	comments := []domain.Comment{
		{CommentID: uuid.NewString(), PostID: post.PostID, EventID: suite.event.EventID, Message: "I have two seats", Author: guestRef},
	}
	invitations := []domain.Invitation{
		{InvitationID: uuid.NewString(), EventID: suite.event.EventID, GuestID: guestID, GuestName: "Bob", Accepted: boolPtr(true)},
	}

	suite.mockEventRepo.On("FindEventByID", mock.Anything, suite.event.EventID).Return(suite.event, nil).Once()
	suite.mockDiscussionRepo.On("FindPostByID", mock.Anything, post.PostID).Return(post, nil).Once()
	suite.mockDiscussionRepo.On("ListCommentsByPost", mock.Anything, post.PostID).Return(comments, nil).Once()
	suite.mockInvitationRepo.On("ListInvitationsByEvent", mock.Anything, suite.event.EventID).Return(invitations, nil).Once()

	thread, err := suite.service.GetPostThread(context.Background(), suite.event.EventID, post.PostID)

	suite.Require().NoError(err)
	suite.Equal("Alice", thread.Post.AuthorName)
	suite.Require().Len(thread.Comments, 1)
	suite.Equal("Bob", thread.Comments[0].AuthorName)
}

func TestDiscussionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscussionServiceTestSuite))
}
