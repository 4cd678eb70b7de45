package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/medalizer/blood-report-analyzer/gen/ent"
	entuser "github.com/medalizer/blood-report-analyzer/gen/ent/user"
	"github.com/medalizer/blood-report-analyzer/internal/entity"
	"github.com/medalizer/blood-report-analyzer/internal/utils"
)

type UserRepository interface {
	Create(ctx context.Context, username string, email *string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, username string, email *string) (*entity.User, error) {
	u, err := r.client.User.Create().
		SetUsername(username).
		SetNillableEmail(email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "username", username, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := r.client.User.Query().
		Where(entuser.Username(username)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	ulist, err := r.client.User.Query().Order(entuser.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	out := make([]*entity.User, len(ulist))
	for i, u := range ulist {
		out[i] = utils.ToUser(u)
	}
	return out, nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(entuser.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
