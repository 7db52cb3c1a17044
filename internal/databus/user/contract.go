//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"
	"time"

	"github.com/curelink-health/chat-service/internal/model"
)

type DBRepo interface {
	AddNewUser(ctx context.Context, userInfo *model.UserParams) error
	UpdateUserNickname(ctx context.Context, userID, newNickname string) error
	UpdateUserAvatar(ctx context.Context, userID, avatarLink string) error
	SetUserApproval(ctx context.Context, userID string, approvedAt *time.Time) error
}
