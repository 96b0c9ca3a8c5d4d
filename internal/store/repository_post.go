package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Queries are built with squirrel using $n placeholders.
type postRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListPosts returns all posts newest first. The client renders the list in
// this order without re-sorting.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("post_id", "title", "content", "author_id", "created_at").
		From("posts").
		OrderBy("created_at DESC", "post_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreateAt); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return posts, nil
}

// CreatePost inserts a new post for authorID and returns the stored record
// with server-assigned id and timestamp.
func (r *postRepository) CreatePost(ctx context.Context, authorID int64, draft models.PostDraft) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("posts").
		Columns("title", "content", "author_id").
		Values(draft.Title, draft.Content, authorID).
		Suffix("RETURNING post_id, title, content, author_id, created_at").
		ToSql()
	if err != nil {
		return models.Post{}, fmt.Errorf("build insert query: %w", err)
	}

	var p models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreateAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: scanning error")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return p, nil
}

// GetPostAuthor returns the author id of the given post, or [ErrPostNotFound].
func (r *postRepository) GetPostAuthor(ctx context.Context, postID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("author_id").
		From("posts").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build author query: %w", err)
	}

	var authorID int64
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&authorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPostAuthor").Msg("error: scanning error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return authorID, nil
}

// DeletePost removes the post with the given id, returning [ErrPostNotFound]
// when no row matched.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("posts").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: exec error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
