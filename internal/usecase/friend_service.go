package usecase

import (
	"context"
	"fmt"

	"github.com/scorebets/scorebets/internal/domain/friend"
	"github.com/scorebets/scorebets/internal/domain/user"
)

// FriendService maintains the directed friend edges that scope the
// friends ranking view.
type FriendService struct {
	userRepo   user.Repository
	friendRepo friend.Repository
}

func NewFriendService(userRepo user.Repository, friendRepo friend.Repository) *FriendService {
	return &FriendService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
	}
}

// Add creates the edge; adding an existing friend is a no-op.
func (s *FriendService) Add(ctx context.Context, fromUserID, toUserID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FriendService.Add")
	defer span.End()

	edge := friend.Friend{FromUserID: fromUserID, ToUserID: toUserID}
	if err := edge.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, id := range []int64{fromUserID, toUserID} {
		if _, exists, err := s.userRepo.GetByID(ctx, id); err != nil {
			return fmt.Errorf("get user: %w", err)
		} else if !exists {
			return fmt.Errorf("%w: user=%d", ErrNotFound, id)
		}
	}

	if err := s.friendRepo.Add(ctx, edge); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	return nil
}

func (s *FriendService) Remove(ctx context.Context, fromUserID, toUserID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FriendService.Remove")
	defer span.End()

	if err := s.friendRepo.Remove(ctx, friend.Friend{FromUserID: fromUserID, ToUserID: toUserID}); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}

	return nil
}

// ListIDs returns the user's outgoing friend ids.
func (s *FriendService) ListIDs(ctx context.Context, fromUserID int64) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FriendService.ListIDs")
	defer span.End()

	ids, err := s.friendRepo.ListIDsByUser(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	return ids, nil
}
