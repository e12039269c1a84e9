package service

import (
	"context"
	"time"

	"github.com/blogify/blog-service/internal/model"
	"github.com/blogify/blog-service/internal/repository"
	"github.com/blogify/blog-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type sessionService struct {
	logger *zap.Logger
	repo   *repository.Repository
	ttl    time.Duration
}

func newSessionService(logger *zap.Logger, repo *repository.Repository) Session {
	return &sessionService{
		logger: logger,
		repo:   repo,
		ttl:    viper.GetDuration("session.ttl"),
	}
}

// Resolve looks the opaque token up in the session store shared with the auth
// service and slides the session TTL on a hit. Every call re-resolves; nothing
// is held in process.
func (s *sessionService) Resolve(ctx context.Context, token string) (*model.SessionUser, error) {
	key := redisrepo.SessionKey(token)

	user, err := redisrepo.Get[model.SessionUser](s.repo.Redis.Default, ctx, key)
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Sugar().Errorf("failed to resolve session: %s", err.Error())
		return nil, ErrInternal
	}

	if s.ttl > 0 {
		if err := s.repo.Redis.Default.Expire(ctx, key, s.ttl).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to refresh session ttl for user(%s): %s", user.ID.String(), err.Error())
		}
	}

	return user, nil
}
