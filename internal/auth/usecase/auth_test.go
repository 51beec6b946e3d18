package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"users-srv/internal/auth"
	"users-srv/internal/model"
	"users-srv/internal/user/repository"
	"users-srv/internal/user/repository/mocks"
	"users-srv/pkg/encrypter"
	"users-srv/pkg/log"
	"users-srv/pkg/offload"
	postgres "users-srv/pkg/postgre"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	err error
}

func (f fakeIssuer) Issue(_ context.Context, c model.IdentityClaims) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + c.UserID, nil
}

func newHasher(t *testing.T) encrypter.Hasher {
	t.Helper()
	h, err := encrypter.New(encrypter.Config{Algorithm: encrypter.AlgorithmBcrypt, BcryptCost: 4}, offload.New(2))
	require.NoError(t, err)
	return h
}

func newTestUsecase(t *testing.T, repo repository.Repository, issuer auth.TokenIssuer) *usecase {
	t.Helper()
	uc := New(log.NewNop(), repo, newHasher(t), issuer).(*usecase)
	uc.newID = func() string { return "id1" }
	return uc
}

func runInTx(repo *mocks.Repository) func(context.Context, func(repository.Repository) error) error {
	return func(_ context.Context, fn func(repository.Repository) error) error {
		return fn(repo)
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	in := auth.RegisterInput{Email: "a@b.c", Name: "Ada", Surname: "Lovelace", Password: "password1"}

	t.Run("issues token for the new user", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("InTx", ctx, mock.Anything).Return(runInTx(repo))
		repo.On("Create", ctx, mock.MatchedBy(func(o repository.CreateOptions) bool {
			return o.User.ID == "id1" && o.User.Email == "a@b.c" && o.User.PasswordHash != "password1"
		})).Return(func(_ context.Context, o repository.CreateOptions) (model.User, error) {
			return o.User, nil
		})

		out, err := newTestUsecase(t, repo, fakeIssuer{}).Register(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "token-for-id1", out.Token)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("InTx", ctx, mock.Anything).Return(runInTx(repo))
		repo.On("Create", ctx, mock.Anything).Return(model.User{}, &pq.Error{Code: "23505"})

		_, err := newTestUsecase(t, repo, fakeIssuer{}).Register(ctx, in)
		assert.True(t, postgres.IsUniqueViolation(err))
	})

	t.Run("signing failure aborts the transaction", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		boom := errors.New("pool closed")
		repo.On("InTx", ctx, mock.Anything).Return(runInTx(repo))
		repo.On("Create", ctx, mock.Anything).Return(model.User{ID: "id1"}, nil)

		_, err := newTestUsecase(t, repo, fakeIssuer{err: boom}).Register(ctx, in)
		assert.ErrorIs(t, err, boom)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := newHasher(t).Hash(ctx, "password1")
	require.NoError(t, err)
	stored := model.User{ID: "u1", Email: "a@b.c", Name: "Ada", PasswordHash: hash}

	tests := []struct {
		name     string
		password string
		repoUsr  model.User
		repoErr  error
		wantTok  string
		wantErr  error
	}{
		{"valid", "password1", stored, nil, "token-for-u1", nil},
		{"wrong password", "password2", stored, nil, "", auth.ErrInvalidCredentials},
		{"unknown email", "password1", model.User{}, repository.ErrNotFound, "", auth.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			repo.On("GetOne", ctx, repository.GetOneOptions{Email: "a@b.c"}).Return(tt.repoUsr, tt.repoErr)

			out, err := newTestUsecase(t, repo, fakeIssuer{}).Login(ctx, auth.LoginInput{Email: "a@b.c", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTok, out.Token)
		})
	}
}

// fcmStore enforces the (token, user_id) primary key like the fcm_tokens table.
type fcmStore struct {
	repository.Repository
	mu   sync.Mutex
	rows map[[2]string]struct{}
}

func (s *fcmStore) Detail(_ context.Context, id string) (model.User, error) {
	return model.User{ID: id}, nil
}

func (s *fcmStore) AddFCMToken(_ context.Context, opts repository.AddFCMTokenOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]string{opts.Token, opts.UserID}
	if _, ok := s.rows[key]; ok {
		return &pq.Error{Code: "23505", Constraint: "fcm_tokens_pkey"}
	}
	s.rows[key] = struct{}{}
	return nil
}

func TestRegisterFCMTokenConcurrentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := &fcmStore{rows: map[[2]string]struct{}{}}
	uc := newTestUsecase(t, store, fakeIssuer{})

	const n = 8
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = uc.RegisterFCMToken(ctx, model.IdentityClaims{UserID: "u1"}, auth.RegisterFCMTokenInput{Token: "device-1"})
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, store.rows, 1)
}

func TestRegisterFCMToken(t *testing.T) {
	ctx := context.Background()
	sc := model.IdentityClaims{UserID: "u1"}

	t.Run("stale token", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Detail", ctx, "u1").Return(model.User{}, repository.ErrNotFound)

		err := newTestUsecase(t, repo, fakeIssuer{}).RegisterFCMToken(ctx, sc, auth.RegisterFCMTokenInput{Token: "d"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("other storage faults surface", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		fk := &pq.Error{Code: "23503"}
		repo.On("Detail", ctx, "u1").Return(model.User{ID: "u1"}, nil)
		repo.On("AddFCMToken", ctx, repository.AddFCMTokenOptions{UserID: "u1", Token: "d"}).Return(fk)

		err := newTestUsecase(t, repo, fakeIssuer{}).RegisterFCMToken(ctx, sc, auth.RegisterFCMTokenInput{Token: "d"})
		assert.ErrorIs(t, err, fk)
	})
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@b.c", auth.MaskEmail("ada@b.c"))
	assert.Equal(t, "***", auth.MaskEmail("no-at-sign"))
}
