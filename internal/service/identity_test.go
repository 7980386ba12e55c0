package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/asset"
	"github.com/sakif/account-service/internal/auth"
	"github.com/sakif/account-service/internal/model"
)

// ====== TEST FAKES ======

// fakeUserRepo is an in-memory repository.UserRepository. The mutex matters:
// the real store serializes through SQLite, so the fake must be safe for the
// concurrent-update tests too.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int

	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.Conflict("User already exists")
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperror.NotFound("user", email)
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return apperror.NotFound("user", user.ID)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return apperror.NotFound("user", id)
	}
	delete(r.users, id)
	return nil
}

// fakeObjectStore backs the real asset.Manager in tests.
type fakeObjectStore struct {
	uploads map[string][]byte
	deleted []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: map[string][]byte{}}
}

func (f *fakeObjectStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.uploads[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

// ====== TEST HARNESS ======

type testEnv struct {
	svc   *IdentityService
	repo  *fakeUserRepo
	store *fakeObjectStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	repo := newFakeUserRepo()
	store := newFakeObjectStore()

	svc := NewIdentityService(
		repo,
		tokens,
		auth.NewPasswordServiceForTest(4),
		asset.NewManager(store, logger),
		logger,
	)

	return &testEnv{svc: svc, repo: repo, store: store}
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Ada",
		Surname:         "Lovelace",
		DisplayName:     "ada",
		Email:           "ada@example.com",
		TelephoneNumber: "0812345678",
		Password:        "first-program!",
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x % 256), B: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

// ====== REGISTER ======

func TestRegister_ThenGetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if userID == "" {
		t.Fatal("Register() returned empty userID")
	}

	user, err := env.svc.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Email = %q, want ada@example.com", user.Email)
	}
	if user.DisplayName != "ada" {
		t.Errorf("DisplayName = %q, want ada", user.DisplayName)
	}
	if user.PasswordHash == "first-program!" {
		t.Error("password stored in plaintext")
	}
	if user.LineID != nil {
		t.Errorf("LineID = %v, want nil when not supplied", *user.LineID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	in := validRegisterInput()
	in.DisplayName = "someone else"
	_, err := env.svc.Register(ctx, in)
	if err == nil {
		t.Fatal("second Register() with same email should fail")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
	if len(env.repo.users) != 1 {
		t.Errorf("user count = %d, want 1 — conflict must not create a record", len(env.repo.users))
	}
}

func TestRegister_BlankDisplayName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegisterInput()
	in.DisplayName = "   "
	in.ImageData = pngBytes(t, 10, 10)
	in.ImageName = "avatar.png"

	_, err := env.svc.Register(ctx, in)
	if err == nil {
		t.Fatal("Register() should reject a whitespace-only display name")
	}
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	// Validation happens before side effects: no record, no upload.
	if len(env.repo.users) != 0 {
		t.Error("validation failure must not create a record")
	}
	if len(env.store.uploads) != 0 {
		t.Error("validation failure must not upload an asset")
	}
}

func TestRegister_DisplayNameTrimmed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegisterInput()
	in.DisplayName = "  ada  "

	userID, err := env.svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	user, _ := env.svc.GetProfile(ctx, userID)
	if user.DisplayName != "ada" {
		t.Errorf("DisplayName = %q, want trimmed %q", user.DisplayName, "ada")
	}
}

func TestRegister_EmptyLineIDStoredAsNull(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	empty := ""
	in := validRegisterInput()
	in.LineID = &empty

	userID, err := env.svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	user, _ := env.svc.GetProfile(ctx, userID)
	if user.LineID != nil {
		t.Errorf("LineID = %q, want nil for empty wire value", *user.LineID)
	}
}

func TestRegister_WithImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegisterInput()
	in.ImageData = pngBytes(t, 50, 50)
	in.ImageName = "avatar.png"

	userID, err := env.svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, _ := env.svc.GetProfile(ctx, userID)
	if user.ProfileImage == nil {
		t.Fatal("ProfileImage = nil, want uploaded asset URL")
	}
	if len(env.store.uploads) != 1 {
		t.Errorf("uploads = %d, want 1", len(env.store.uploads))
	}
	if !strings.HasPrefix(*user.ProfileImage, "https://cdn.example.com/") {
		t.Errorf("ProfileImage = %q, want cdn URL", *user.ProfileImage)
	}
}

// ====== LOGIN ======

func TestLogin_TokenRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	result, err := env.svc.Login(ctx, "ada@example.com", "first-program!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.UserID != userID {
		t.Errorf("UserID = %q, want %q", result.UserID, userID)
	}
	if result.Token == "" {
		t.Error("Login() returned empty token")
	}
	if result.ExpiresAt.IsZero() {
		t.Error("Login() returned zero ExpiresAt")
	}
}

func TestLogin_FailuresAreUniform(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Unknown email and wrong password must be indistinguishable to callers.
	_, errUnknown := env.svc.Login(ctx, "nobody@example.com", "whatever")
	_, errWrong := env.svc.Login(ctx, "ada@example.com", "wrong-password")

	for name, err := range map[string]error{"unknown email": errUnknown, "wrong password": errWrong} {
		if err == nil {
			t.Fatalf("Login() with %s should fail", name)
		}
		if !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Errorf("Login() with %s: error = %v, want ErrInvalidCredentials", name, err)
		}
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown.Error(), errWrong.Error())
	}
}

// ====== UPDATE PROFILE ======

func TestUpdateProfile_MergesNonEmptyFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := env.svc.UpdateProfile(ctx, userID, UpdateProfileInput{
		DisplayName: "countess",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.DisplayName != "countess" {
		t.Errorf("DisplayName = %q, want countess", updated.DisplayName)
	}
	// Untouched fields survive.
	if updated.Name != "Ada" || updated.Surname != "Lovelace" {
		t.Errorf("Name/Surname = %q/%q, want Ada/Lovelace", updated.Name, updated.Surname)
	}
	if updated.TelephoneNumber != "0812345678" {
		t.Errorf("TelephoneNumber = %q, want unchanged", updated.TelephoneNumber)
	}
	if updated.Email != "ada@example.com" {
		t.Errorf("Email = %q, want unchanged", updated.Email)
	}
}

func TestUpdateProfile_ReplacesImageAndDeletesOld(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegisterInput()
	in.ImageData = pngBytes(t, 20, 20)
	in.ImageName = "first.png"
	userID, err := env.svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	before, _ := env.svc.GetProfile(ctx, userID)
	oldURL := *before.ProfileImage

	updated, err := env.svc.UpdateProfile(ctx, userID, UpdateProfileInput{
		ImageData: pngBytes(t, 30, 30),
		ImageName: "second.png",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if updated.ProfileImage == nil || *updated.ProfileImage == oldURL {
		t.Error("UpdateProfile() should point at a new asset URL")
	}
	if len(env.store.deleted) != 1 {
		t.Fatalf("deleted = %d keys, want 1 (the replaced asset)", len(env.store.deleted))
	}
	if got, want := env.store.deleted[0], asset.KeyFromURL(oldURL); got != want {
		t.Errorf("deleted key = %q, want %q", got, want)
	}
}

func TestUpdateProfile_ConcurrentSameUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Concurrent partial updates on one account: last write wins, and the
	// record must come out whole.
	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := env.svc.UpdateProfile(ctx, userID, UpdateProfileInput{
				DisplayName: fmt.Sprintf("writer-%d", n),
			})
			if err != nil {
				t.Errorf("UpdateProfile() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	user, err := env.svc.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile() after racing updates: %v", err)
	}
	if !strings.HasPrefix(user.DisplayName, "writer-") {
		t.Errorf("DisplayName = %q, want one writer's value", user.DisplayName)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("Email = %q, want unchanged", user.Email)
	}
	if user.Name != "Ada" || user.Surname != "Lovelace" {
		t.Errorf("Name/Surname = %q/%q, want unchanged", user.Name, user.Surname)
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: "x"})
	if err == nil {
		t.Fatal("UpdateProfile() on unknown user should fail")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

// ====== CHANGE PASSWORD ======

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := env.svc.ChangePassword(ctx, userID, "first-program!", "analytical-engine"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	// Old password stops working, new one works.
	if _, err := env.svc.Login(ctx, "ada@example.com", "first-program!"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("login with old password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := env.svc.Login(ctx, "ada@example.com", "analytical-engine"); err != nil {
		t.Errorf("login with new password: error = %v, want success", err)
	}
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err = env.svc.ChangePassword(ctx, userID, "not-my-password", "new-password")
	if err == nil {
		t.Fatal("ChangePassword() with wrong current password should fail")
	}
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}

	// Password unchanged.
	if _, err := env.svc.Login(ctx, "ada@example.com", "first-program!"); err != nil {
		t.Errorf("original password should still work: %v", err)
	}
}

func TestChangePassword_EmptyNew(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.ChangePassword(context.Background(), "any", "current", "")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation for empty new password", err)
	}
}

// ====== DELETE / LOGOUT ======

func TestDeleteProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validRegisterInput()
	in.ImageData = pngBytes(t, 20, 20)
	in.ImageName = "avatar.png"
	userID, err := env.svc.Register(ctx, in)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := env.svc.DeleteProfile(ctx, userID); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}

	if _, err := env.svc.GetProfile(ctx, userID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetProfile() after delete: error = %v, want ErrNotFound", err)
	}
	if len(env.store.deleted) != 1 {
		t.Errorf("deleted = %d keys, want 1 (the profile asset)", len(env.store.deleted))
	}
}

func TestDeleteProfile_Unknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.DeleteProfile(context.Background(), "missing")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestLogout_RecordsTimestamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID, err := env.svc.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := env.svc.Logout(ctx, userID); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	user, _ := env.svc.GetProfile(ctx, userID)
	if user.LastLogoutAt == nil {
		t.Fatal("LastLogoutAt = nil, want recorded timestamp")
	}
}
