//go:generate go run go.uber.org/mock/mockgen -source=user_repository.go -destination=../../mocks/mock_user_repository.go -package=mocks
package storage

import (
	stderrors "errors"
	"job-chat/domain"
	"job-chat/errors"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	CreateUser(user User) (User, error)
	GetUserByID(id string) (User, error)
	GetUserByEmail(email string) (User, error)
}

// User is the account record this service resolves identities from.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	Role         domain.Role
	Status       domain.AccountStatus
	PasswordHash string
	CreatedAt    time.Time
}

func (u User) Identity() domain.Identity {
	return domain.Identity{UserID: u.ID, Name: u.DisplayName, Role: u.Role}
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userIDKey(id string) []byte { return []byte("user:id:" + id) }

func userEmailKey(email string) []byte {
	return []byte("user:email:" + strings.ToLower(email))
}

// CreateUser persists the user and its email index.
// A missing ID is generated. The email is unique.
func (u UserRepository) CreateUser(user User) (User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	data, err := EncodeUser(user)
	if err != nil {
		return User{}, err
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userEmailKey(user.Email)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(userIDKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(userEmailKey(user.Email), []byte(user.ID))
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByID(id string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrUserNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = getUser(txn, string(id))
		return err
	})
	return user, err
}

func getUser(txn *badger.Txn, id string) (User, error) {
	item, err := txn.Get(userIDKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	var user User
	err = item.Value(func(val []byte) error {
		user, err = DecodeUser(val)
		return err
	})
	return user, err
}
