package coordinator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcoordinator "github.com/agrocoop/distribution/application/coordinator"
	"github.com/agrocoop/distribution/cmd/config"
	"github.com/agrocoop/distribution/constant"
	coordinatormocks "github.com/agrocoop/distribution/mocks/repository/coordinator"
	redismocks "github.com/agrocoop/distribution/mocks/repository/redis"
	"github.com/agrocoop/distribution/model"
	cerr "github.com/agrocoop/distribution/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestCoordinatorApp_Register(t *testing.T) {
	type fields struct {
		config          *config.Config
		coordinatorRepo *coordinatormocks.CoordinatorRepository
		redisRepo       *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new coordinator",
			fields: fields{
				config:          testAuthConfig(),
				coordinatorRepo: coordinatormocks.NewCoordinatorRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Ana Ruiz",
					Email:    "ana@coop.example",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.coordinatorRepo.
					On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
					Return(nil, nil).
					Once()
				f.coordinatorRepo.
					On("Get", mock.Anything, &model.CoordinatorFilter{Phone: "081234567890"}).
					Return(nil, nil).
					Once()
				f.coordinatorRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.CoordinatorEntity) bool {
						if ent.Name != "Ana Ruiz" || ent.Email != "ana@coop.example" || ent.Phone != "081234567890" {
							return false
						}
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.CoordinatorEntity{
						ID:    1,
						Name:  "Ana Ruiz",
						Email: "ana@coop.example",
						Phone: "081234567890",
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				Name:  "Ana Ruiz",
				Email: "ana@coop.example",
			},
			wantErr: false,
		},
		{
			name: "error: email already registered",
			fields: fields{
				config:          testAuthConfig(),
				coordinatorRepo: coordinatormocks.NewCoordinatorRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Ana Ruiz",
					Email:    "ana@coop.example",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.coordinatorRepo.
					On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
					Return(&model.CoordinatorEntity{ID: 1, Email: "ana@coop.example"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already registered",
			fields: fields{
				config:          testAuthConfig(),
				coordinatorRepo: coordinatormocks.NewCoordinatorRepository(t),
				redisRepo:       redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Name:     "Ana Ruiz",
					Email:    "ana@coop.example",
					Phone:    "081234567890",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.coordinatorRepo.
					On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
					Return(nil, nil).
					Once()
				f.coordinatorRepo.
					On("Get", mock.Anything, &model.CoordinatorFilter{Phone: "081234567890"}).
					Return(&model.CoordinatorEntity{ID: 2, Phone: "081234567890"}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcoordinator.NewCoordinatorApp(tt.fields.config, tt.fields.coordinatorRepo, tt.fields.redisRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Name != tt.want.Name || got.Email != tt.want.Email {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoordinatorApp_LoginAndValidateToken(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	t.Run("success: login by email then validate the issued token", func(t *testing.T) {
		coordinatorRepo := coordinatormocks.NewCoordinatorRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appcoordinator.NewCoordinatorApp(testAuthConfig(), coordinatorRepo, redisRepo)

		coordinatorRepo.
			On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
			Return(&model.CoordinatorEntity{
				ID:           1,
				Name:         "Ana Ruiz",
				Email:        "ana@coop.example",
				PasswordHash: string(hashed),
			}, nil).
			Once()

		var jti string
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Run(func(args mock.Arguments) { jti = args.String(1) }).
			Return(nil).
			Once()

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ana@coop.example",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if res.Token == "" {
			t.Fatal("Login() returned empty token")
		}

		redisRepo.
			On("GetSession", mock.Anything, jti).
			Return(uint64(1), nil).
			Once()

		userID, err := app.ValidateToken(context.Background(), res.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 1 {
			t.Fatalf("ValidateToken() userID = %d, want 1", userID)
		}
	})

	t.Run("error: wrong password", func(t *testing.T) {
		coordinatorRepo := coordinatormocks.NewCoordinatorRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appcoordinator.NewCoordinatorApp(testAuthConfig(), coordinatorRepo, redisRepo)

		coordinatorRepo.
			On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
			Return(&model.CoordinatorEntity{
				ID:           1,
				Email:        "ana@coop.example",
				PasswordHash: string(hashed),
			}, nil).
			Once()

		_, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ana@coop.example",
			Password:   "wrong",
		})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidPassword] {
			t.Fatalf("Login() error = %v, want invalid password", err)
		}
	})

	t.Run("error: login by phone for unknown coordinator", func(t *testing.T) {
		coordinatorRepo := coordinatormocks.NewCoordinatorRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appcoordinator.NewCoordinatorApp(testAuthConfig(), coordinatorRepo, redisRepo)

		coordinatorRepo.
			On("Get", mock.Anything, &model.CoordinatorFilter{Phone: "089999999999"}).
			Return(nil, nil).
			Once()

		_, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "089999999999",
			Password:   "password123",
		})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("Login() error = %v, want not found", err)
		}
	})

	t.Run("success: logout drops the session behind the token", func(t *testing.T) {
		coordinatorRepo := coordinatormocks.NewCoordinatorRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appcoordinator.NewCoordinatorApp(testAuthConfig(), coordinatorRepo, redisRepo)

		coordinatorRepo.
			On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
			Return(&model.CoordinatorEntity{
				ID:           1,
				Email:        "ana@coop.example",
				PasswordHash: string(hashed),
			}, nil).
			Once()

		var jti string
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Run(func(args mock.Arguments) { jti = args.String(1) }).
			Return(nil).
			Once()

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ana@coop.example",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.
			On("DeleteSession", mock.Anything, jti).
			Return(nil).
			Once()

		if err := app.Logout(context.Background(), res.Token); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
	})

	t.Run("error: logout with a garbage token", func(t *testing.T) {
		app := appcoordinator.NewCoordinatorApp(
			testAuthConfig(),
			coordinatormocks.NewCoordinatorRepository(t),
			redismocks.NewRepository(t),
		)

		err := app.Logout(context.Background(), "not-a-jwt")
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrUnauthorize] {
			t.Fatalf("Logout() error = %v, want unauthorized", err)
		}
	})

	t.Run("error: token with dropped session is rejected", func(t *testing.T) {
		coordinatorRepo := coordinatormocks.NewCoordinatorRepository(t)
		redisRepo := redismocks.NewRepository(t)
		app := appcoordinator.NewCoordinatorApp(testAuthConfig(), coordinatorRepo, redisRepo)

		coordinatorRepo.
			On("Get", mock.Anything, &model.CoordinatorFilter{Email: "ana@coop.example"}).
			Return(&model.CoordinatorEntity{
				ID:           1,
				Email:        "ana@coop.example",
				PasswordHash: string(hashed),
			}, nil).
			Once()
		redisRepo.
			On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
			Return(nil).
			Once()

		res, err := app.Login(context.Background(), &model.LoginRequest{
			Identifier: "ana@coop.example",
			Password:   "password123",
		})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		redisRepo.
			On("GetSession", mock.Anything, mock.AnythingOfType("string")).
			Return(uint64(0), errors.New("redis: nil")).
			Once()

		if _, err := app.ValidateToken(context.Background(), res.Token); err == nil {
			t.Fatal("ValidateToken() should fail when the session is gone")
		}
	})
}
