package user

import (
	"context"
	"errors"
	"testing"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/role"
	domainUser "usermgmt-service/internal/domain/user"
	"usermgmt-service/internal/domain/uow"
	"usermgmt-service/internal/domain/validation"
	"usermgmt-service/internal/testutil/addressmock"
	"usermgmt-service/internal/testutil/rolemock"
	"usermgmt-service/internal/testutil/usermock"
	"usermgmt-service/internal/testutil/uowmock"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeHasher struct{ err error }

func (h fakeHasher) Hash(plain string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + plain, nil
}

type fakeCache struct {
	views       map[uint64]domainUser.View
	getErr      error
	invalidated []uint64
}

func newFakeCache() *fakeCache { return &fakeCache{views: map[uint64]domainUser.View{}} }

func (c *fakeCache) Get(_ context.Context, id uint64) (*domainUser.View, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.views[id]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *fakeCache) Set(_ context.Context, v *domainUser.View) error {
	c.views[v.ID] = *v
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, ids ...uint64) error {
	for _, id := range ids {
		delete(c.views, id)
	}
	c.invalidated = append(c.invalidated, ids...)
	return nil
}

type fakeImages struct {
	key string
	err error
}

func (f fakeImages) PutUserImage(context.Context, uint64, string, []byte) (string, error) {
	return f.key, f.err
}

func validInput() RegisterInput {
	return RegisterInput{Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "Secret1!x"}
}

func TestUsecase_Register(t *testing.T) {
	tests := []struct {
		name      string
		in        RegisterInput
		users     *usermock.Repo
		hasher    Hasher
		wantErr   error
		wantField string
	}{
		{
			name: "happy path hashes and persists",
			in:   validInput(),
			users: &usermock.Repo{
				GetByEmailFn: func(context.Context, string) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
				GetByPhoneFn: func(context.Context, string) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
				CreateFn: func(_ context.Context, u *domainUser.User) error {
					if u.Password != "hashed:Secret1!x" {
						t.Fatalf("password not hashed: %q", u.Password)
					}
					u.ID = 10
					return nil
				},
			},
			hasher: fakeHasher{},
		},
		{
			name:      "invalid email never reaches the store",
			in:        RegisterInput{Name: "x", Email: "nope", Phone: "9876543210", Password: "Secret1!x"},
			users:     &usermock.Repo{},
			hasher:    fakeHasher{},
			wantField: "email",
		},
		{
			name:      "weak password",
			in:        RegisterInput{Name: "x", Email: "a@b.co", Phone: "9876543210", Password: "password"},
			users:     &usermock.Repo{},
			hasher:    fakeHasher{},
			wantField: "password",
		},
		{
			name: "duplicate email",
			in:   validInput(),
			users: &usermock.Repo{
				GetByEmailFn: func(context.Context, string) (*domainUser.User, error) { return &domainUser.User{ID: 1}, nil },
			},
			hasher:  fakeHasher{},
			wantErr: domainUser.ErrDuplicateEmail,
		},
		{
			name: "duplicate phone",
			in:   validInput(),
			users: &usermock.Repo{
				GetByEmailFn: func(context.Context, string) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
				GetByPhoneFn: func(context.Context, string) (*domainUser.User, error) { return &domainUser.User{ID: 1}, nil },
			},
			hasher:  fakeHasher{},
			wantErr: domainUser.ErrDuplicatePhone,
		},
		{
			name: "hasher failure",
			in:   validInput(),
			users: &usermock.Repo{
				GetByEmailFn: func(context.Context, string) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
				GetByPhoneFn: func(context.Context, string) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
			},
			hasher:  fakeHasher{err: bcrypt.ErrPasswordTooLong},
			wantErr: bcrypt.ErrPasswordTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(tt.users, uowmock.Passthrough(uow.Repos{Users: tt.users}), tt.hasher, nil, nil)
			v, err := uc.Register(context.Background(), tt.in)

			switch {
			case tt.wantField != "":
				var ve *validation.Error
				if !errors.As(err, &ve) || ve.Field != tt.wantField {
					t.Fatalf("want validation error on %s, got %v", tt.wantField, err)
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want err=%v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if v.ID != 10 || v.Email != tt.in.Email {
					t.Fatalf("unexpected view: %+v", v)
				}
			}
		})
	}
}

func TestUsecase_Get_ReadThroughCache(t *testing.T) {
	calls := 0
	users := &usermock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainUser.User, error) {
			calls++
			return &domainUser.User{ID: id, Name: "Asha", Email: "asha@example.com", Phone: "9876543210"}, nil
		},
	}
	cache := newFakeCache()
	uc := NewUsecase(users, nil, fakeHasher{}, cache, nil)

	for i := 0; i < 2; i++ {
		v, err := uc.Get(context.Background(), 5)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v.ID != 5 || v.Addresses == nil || v.Roles == nil {
			t.Fatalf("unexpected view: %+v", v)
		}
	}
	if calls != 1 {
		t.Fatalf("store hit %d times, want 1", calls)
	}
}

func TestUsecase_Get_CacheErrorFallsBackToStore(t *testing.T) {
	users := &usermock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainUser.User, error) {
			return &domainUser.User{ID: id}, nil
		},
	}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	uc := NewUsecase(users, nil, fakeHasher{}, cache, nil)

	if _, err := uc.Get(context.Background(), 3); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestUsecase_Get_NotFound(t *testing.T) {
	users := &usermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
	}
	uc := NewUsecase(users, nil, fakeHasher{}, nil, nil)
	if _, err := uc.Get(context.Background(), 1); !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUsecase_AssignRoles(t *testing.T) {
	usr := &domainUser.User{ID: 4, Email: "a@b.co", Phone: "9876543210"}
	var attached []role.Role
	users := &usermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domainUser.User, error) {
			cp := *usr
			cp.Roles = attached
			return &cp, nil
		},
		AttachRolesFn: func(_ context.Context, _ *domainUser.User, roles ...role.Role) error {
			attached = append(attached, roles...)
			return nil
		},
	}
	roles := &rolemock.Repo{
		GetByNameFn: func(_ context.Context, name string) (*role.Role, error) {
			if name == "admin" {
				return &role.Role{ID: 1, Name: "admin"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	cache := newFakeCache()
	uc := NewUsecase(users, uowmock.Passthrough(uow.Repos{Users: users, Roles: roles}), fakeHasher{}, cache, nil)

	v, err := uc.AssignRoles(context.Background(), 4, []string{"admin"})
	if err != nil {
		t.Fatalf("AssignRoles: %v", err)
	}
	if len(v.Roles) != 1 || v.Roles[0].Role != "admin" {
		t.Fatalf("roles = %+v", v.Roles)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != 4 {
		t.Fatalf("cache not invalidated: %v", cache.invalidated)
	}

	if _, err := uc.AssignRoles(context.Background(), 4, []string{"ghost"}); !errors.Is(err, role.ErrNotFound) {
		t.Fatalf("want role.ErrNotFound, got %v", err)
	}
}

func TestUsecase_AddAddress(t *testing.T) {
	var linked []address.Address
	users := &usermock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainUser.User, error) {
			return &domainUser.User{ID: id, Addresses: linked}, nil
		},
		AttachAddressesFn: func(_ context.Context, _ *domainUser.User, addrs ...address.Address) error {
			linked = append(linked, addrs...)
			return nil
		},
	}
	addrs := &addressmock.Repo{
		CreateFn: func(_ context.Context, a *address.Address) error {
			a.ID = 77
			return nil
		},
	}
	uc := NewUsecase(users, uowmock.Passthrough(uow.Repos{Users: users, Addresses: addrs}), fakeHasher{}, nil, nil)

	city := "Pune"
	v, err := uc.AddAddress(context.Background(), 2, AddressInput{Line1: "1 Main St", District: &city})
	if err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if len(v.Addresses) != 1 || v.Addresses[0].ID != 77 || *v.Addresses[0].District != "Pune" {
		t.Fatalf("addresses = %+v", v.Addresses)
	}
}

func TestUsecase_AddAddress_UnknownUser(t *testing.T) {
	users := &usermock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domainUser.User, error) { return nil, gorm.ErrRecordNotFound },
	}
	uc := NewUsecase(users, uowmock.Passthrough(uow.Repos{Users: users}), fakeHasher{}, nil, nil)
	if _, err := uc.AddAddress(context.Background(), 9, AddressInput{Line1: "x"}); !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUsecase_UploadImage(t *testing.T) {
	var saved *domainUser.User
	users := &usermock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainUser.User, error) {
			return &domainUser.User{ID: id, Email: "a@b.co", Phone: "9876543210"}, nil
		},
		SaveFn: func(_ context.Context, u *domainUser.User) error {
			saved = u
			return nil
		},
	}

	t.Run("disabled", func(t *testing.T) {
		uc := NewUsecase(users, nil, fakeHasher{}, nil, nil)
		if _, err := uc.UploadImage(context.Background(), 1, "image/png", []byte{1}); !errors.Is(err, ErrImagesDisabled) {
			t.Fatalf("want ErrImagesDisabled, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		uc := NewUsecase(users, nil, fakeHasher{}, nil, fakeImages{key: "k"})
		if _, err := uc.UploadImage(context.Background(), 1, "image/png", nil); !errors.Is(err, ErrEmptyImage) {
			t.Fatalf("want ErrEmptyImage, got %v", err)
		}
	})

	t.Run("stores key on user", func(t *testing.T) {
		uc := NewUsecase(users, nil, fakeHasher{}, newFakeCache(), fakeImages{key: "users/1/abc"})
		v, err := uc.UploadImage(context.Background(), 1, "image/png", []byte{0x89, 0x50})
		if err != nil {
			t.Fatalf("UploadImage: %v", err)
		}
		if v.Image == nil || *v.Image != "users/1/abc" {
			t.Fatalf("image = %v", v.Image)
		}
		if saved == nil || saved.Image == nil {
			t.Fatalf("user not saved with image")
		}
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("s3 down")
		uc := NewUsecase(users, nil, fakeHasher{}, nil, fakeImages{err: boom})
		if _, err := uc.UploadImage(context.Background(), 1, "image/png", []byte{1}); !errors.Is(err, boom) {
			t.Fatalf("want %v, got %v", boom, err)
		}
	})
}

func TestUsecase_Delete(t *testing.T) {
	users := &usermock.Repo{
		DeleteFn: func(_ context.Context, id uint64) error {
			if id == 404 {
				return gorm.ErrRecordNotFound
			}
			return nil
		},
	}
	cache := newFakeCache()
	uc := NewUsecase(users, nil, fakeHasher{}, cache, nil)

	if err := uc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("cache not invalidated")
	}
	if err := uc.Delete(context.Background(), 404); !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUsecase_List(t *testing.T) {
	users := &usermock.Repo{
		ListFn: func(_ context.Context, limit, offset int) ([]domainUser.User, error) {
			if limit != 5 || offset != 10 {
				t.Fatalf("paging not forwarded: %d %d", limit, offset)
			}
			return nil, nil
		},
	}
	uc := NewUsecase(users, nil, fakeHasher{}, nil, nil)
	out, err := uc.List(context.Background(), 5, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("want empty non-nil list, got %v", out)
	}
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("Secret1!x")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "Secret1!x" {
		t.Fatal("hash equals plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret1!x")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
	if NewBcryptHasher(0).cost != bcrypt.DefaultCost {
		t.Fatal("out-of-range cost should fall back to default")
	}
}
