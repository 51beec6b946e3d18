package usecase

import (
	"context"
	"errors"
	"strings"

	"users-srv/internal/model"
	"users-srv/internal/user"
	"users-srv/internal/user/repository"
	"users-srv/pkg/minio"
)

func (uc *usecase) DetailMe(ctx context.Context, sc model.IdentityClaims) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

// ListNotifications treats a token whose user no longer exists as bad credentials.
func (uc *usecase) ListNotifications(ctx context.Context, sc model.IdentityClaims) (user.NotificationsOutput, error) {
	if _, err := uc.repo.Detail(ctx, sc.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.NotificationsOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ListNotifications.Detail: %v", err)
		return user.NotificationsOutput{}, err
	}

	ns, err := uc.repo.ListNotifications(ctx, repository.ListNotificationsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ListNotifications: %v", err)
		return user.NotificationsOutput{}, err
	}

	return user.NotificationsOutput{Notifications: ns}, nil
}

func (uc *usecase) UpdatePropic(ctx context.Context, sc model.IdentityClaims, ip user.UpdatePropicInput) (user.UpdatePropicOutput, error) {
	if uc.storage == nil {
		return user.UpdatePropicOutput{}, user.ErrStorageDisabled
	}
	if ip.File == nil || ip.Size <= 0 || ip.Size > minio.MaxUploadSize || !strings.HasPrefix(ip.ContentType, "image/") {
		return user.UpdatePropicOutput{}, user.ErrInvalidPropic
	}

	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		ObjectName:   minio.GenerateObjectName(minio.PropicPrefix, ip.Filename),
		OriginalName: ip.Filename,
		Reader:       ip.File,
		Size:         ip.Size,
		ContentType:  ip.ContentType,
		Metadata:     map[string]string{"user-id": sc.UserID},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UpdatePropic.UploadFile: %v", err)
		return user.UpdatePropicOutput{}, err
	}

	usr, err := uc.repo.UpdatePropic(ctx, repository.UpdatePropicOptions{
		UserID:    sc.UserID,
		PropicURL: info.URL,
	})
	if err != nil {
		if delErr := uc.storage.DeleteFile(ctx, info.ObjectName); delErr != nil {
			uc.l.Warnf(ctx, "internal.user.usecase.UpdatePropic.DeleteFile: %v", delErr)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return user.UpdatePropicOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdatePropic.UpdatePropic: %v", err)
		return user.UpdatePropicOutput{}, err
	}

	token, err := uc.issuer.Issue(ctx, usr.Claims())
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.UpdatePropic.Issue: %v", err)
		return user.UpdatePropicOutput{}, err
	}

	return user.UpdatePropicOutput{User: usr, Token: token}, nil
}
