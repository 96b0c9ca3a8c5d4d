package service

import (
	"context"
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/internal/validators"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// postService is the concrete implementation of PostService.
type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewPostService constructs a PostService backed by the given repository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validators.NewBoardValidator(),
		logger:         logger,
	}
}

// ListPosts returns all posts newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

// CreatePost validates the draft and persists it for authorID. Title and
// content must be non-empty; the category field, if sent, is ignored.
func (p *postService) CreatePost(ctx context.Context, authorID int64, draft models.PostDraft) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, draft); err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("invalid post draft provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := p.postRepository.CreatePost(ctx, authorID, draft)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// DeletePost removes postID on behalf of userID. Only the author may delete
// a post.
//
// Returns:
//   - store.ErrPostNotFound (wrapped) when the post does not exist.
//   - ErrNotPostAuthor when the post belongs to a different user.
func (p *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	log := logger.FromContext(ctx)

	authorID, err := p.postRepository.GetPostAuthor(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post author lookup failed")
		return fmt.Errorf("post author lookup failed: %w", err)
	}

	if authorID != userID {
		log.Error().
			Int64("post_id", postID).
			Int64("user_id", userID).
			Int64("author_id", authorID).
			Msg("delete denied: not the author")
		return ErrNotPostAuthor
	}

	if err = p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
