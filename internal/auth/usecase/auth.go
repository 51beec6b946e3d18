package usecase

import (
	"context"
	"errors"

	"users-srv/internal/auth"
	"users-srv/internal/model"
	"users-srv/internal/user/repository"
	postgres "users-srv/pkg/postgre"
)

// Register hashes the password, inserts the user and signs its first token in one transaction.
// A failed signature rolls the insert back.
func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) (auth.TokenOutput, error) {
	var out auth.TokenOutput

	err := uc.repo.InTx(ctx, func(repo repository.Repository) error {
		hash, err := uc.hasher.Hash(ctx, ip.Password)
		if err != nil {
			uc.l.Errorf(ctx, "internal.auth.usecase.Register.Hash: %v", err)
			return err
		}

		usr, err := repo.Create(ctx, repository.CreateOptions{User: model.User{
			ID:           uc.newID(),
			Email:        ip.Email,
			Name:         ip.Name,
			Surname:      ip.Surname,
			PasswordHash: hash,
		}})
		if err != nil {
			if postgres.IsUniqueViolation(err) {
				uc.sl.LogDuplicateRegister(ctx, ip.Email)
			} else {
				uc.l.Errorf(ctx, "internal.auth.usecase.Register.Create: %v", err)
			}
			return err
		}

		tok, err := uc.issuer.Issue(ctx, usr.Claims())
		if err != nil {
			uc.l.Errorf(ctx, "internal.auth.usecase.Register.Issue: %v", err)
			return err
		}
		out.Token = tok
		return nil
	})
	if err != nil {
		return auth.TokenOutput{}, err
	}

	return out, nil
}

// Login answers an unknown email and a wrong password the same way.
func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.TokenOutput, error) {
	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.sl.LogLoginFailure(ctx, ip.Email, "unknown_email")
			return auth.TokenOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		return auth.TokenOutput{}, err
	}

	ok, err := uc.hasher.Verify(ctx, ip.Password, usr.PasswordHash)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Verify: %v", err)
		return auth.TokenOutput{}, err
	}
	if !ok {
		uc.sl.LogLoginFailure(ctx, ip.Email, "wrong_password")
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	tok, err := uc.issuer.Issue(ctx, usr.Claims())
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.Issue: %v", err)
		return auth.TokenOutput{}, err
	}

	return auth.TokenOutput{Token: tok}, nil
}

// RegisterFCMToken links a device token to the caller. Registering the same pair twice succeeds.
func (uc *usecase) RegisterFCMToken(ctx context.Context, sc model.IdentityClaims, ip auth.RegisterFCMTokenInput) error {
	if _, err := uc.repo.Detail(ctx, sc.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.sl.LogStaleToken(ctx, sc.UserID)
			return auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.RegisterFCMToken.Detail: %v", err)
		return err
	}

	err := uc.repo.AddFCMToken(ctx, repository.AddFCMTokenOptions{UserID: sc.UserID, Token: ip.Token})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.RegisterFCMToken.AddFCMToken: %v", err)
		return err
	}

	return nil
}
