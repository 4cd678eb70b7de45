package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reportpb "github.com/medalizer/blood-report-analyzer/gen/proto/bloodreport/v1"
	"github.com/medalizer/blood-report-analyzer/internal/repository"
	"github.com/medalizer/blood-report-analyzer/internal/utils"
)

type UsersService struct {
	reportpb.UnimplementedUsersServiceServer
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUsersService(users repository.UserRepository, logger *slog.Logger) *UsersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersService{
		userRepo: users,
		logger:   logger,
	}
}

func (s *UsersService) CreateUser(ctx context.Context, req *reportpb.CreateUserRequest) (*reportpb.CreateUserResponse, error) {
	username := strings.TrimSpace(req.GetUsername())
	if username == "" {
		return nil, status.Error(codes.InvalidArgument, "username is required")
	}

	var email *string
	if e := strings.TrimSpace(req.GetEmail()); e != "" {
		email = &e
	}

	u, err := s.userRepo.Create(ctx, username, email)
	if err != nil {
		s.logger.Error("failed to create user", "username", username, "error", err)
		return nil, status.Errorf(codes.AlreadyExists, "create user: %v", err)
	}

	s.logger.Info("user created", "user_id", u.ID, "username", username)
	return &reportpb.CreateUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersService) ListUsers(ctx context.Context, _ *reportpb.ListUsersRequest) (*reportpb.ListUsersResponse, error) {
	ulist, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}

	out := make([]*reportpb.User, 0, len(ulist))
	for _, u := range ulist {
		out = append(out, utils.ToPBUser(u))
	}
	return &reportpb.ListUsersResponse{Users: out}, nil
}
